package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteReelService struct {
	ctx      context.Context
	store    ReelStore
	cache    TotalCache
	recorder mq.Recorder
}

func NewDeleteReelService(ctx context.Context, store ReelStore, cache TotalCache, recorder mq.Recorder) *DeleteReelService {
	return &DeleteReelService{ctx: ctx, store: store, cache: cache, recorder: recorder}
}

type DeleteReelRequest struct {
	ReelId primitive.ObjectID
	Client utils.ClientInfo
}

// DeleteReel is a hard delete; comments referencing the reel are left in
// place. The action event is recorded before the delete so the owner id is
// still readable, and a missing reel only skips the event.
func (s *DeleteReelService) DeleteReel(req *DeleteReelRequest) error {
	reel, err := s.store.GetReelById(s.ctx, req.ReelId)
	if err == nil {
		event := mq.NewActionEvent(reel.UserId.Hex(), model.ActionDeleteReel, "Reel", reel.ID.Hex())
		event.Device = req.Client.Device
		event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
		s.recorder.Record(s.ctx, event)
	} else if errno.ConvertErr(err).ErrCode != errno.ReelNotExistCode {
		return errors.WithMessage(err, "dao.GetReelById failed")
	}

	if err := s.store.DeleteReel(s.ctx, req.ReelId); err != nil {
		return errors.WithMessage(err, "dao.DeleteReel failed")
	}
	s.cache.InvalidatePublishedTotal(s.ctx)
	return nil
}
