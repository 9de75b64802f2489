package service

import (
	"context"
	"time"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShareReelService struct {
	ctx      context.Context
	store    ReelStore
	recorder mq.Recorder
}

func NewShareReelService(ctx context.Context, store ReelStore, recorder mq.Recorder) *ShareReelService {
	return &ShareReelService{ctx: ctx, store: store, recorder: recorder}
}

type ShareReelRequest struct {
	ReelId   primitive.ObjectID
	SharedBy primitive.ObjectID
	SharedTo primitive.ObjectID
	Client   utils.ClientInfo
}

// ShareReel appends to the ordered shares sequence; shares are events, not
// a set, so sharing twice is two entries.
func (s *ShareReelService) ShareReel(req *ShareReelRequest) error {
	if req.SharedBy.IsZero() || req.SharedTo.IsZero() {
		return errno.RequestErr.WithMessage("Missing sharedBy or sharedTo")
	}

	reel, err := s.store.GetReelById(s.ctx, req.ReelId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetReelById failed")
	}

	reel.Shares = append(reel.Shares, model.ReelShare{
		SharedBy: req.SharedBy,
		SharedTo: req.SharedTo,
		SharedAt: time.Now(),
	})
	if err := s.store.SaveReel(s.ctx, reel); err != nil {
		return errors.WithMessage(err, "dao.SaveReel failed")
	}

	event := mq.NewActionEvent(req.SharedBy.Hex(), model.ActionShareReel, "Reel", reel.ID.Hex())
	event.Device = req.Client.Device
	event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
	s.recorder.Record(s.ctx, event)
	return nil
}
