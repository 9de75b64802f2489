package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateReelService struct {
	ctx      context.Context
	store    ReelStore
	recorder mq.Recorder
}

func NewUpdateReelService(ctx context.Context, store ReelStore, recorder mq.Recorder) *UpdateReelService {
	return &UpdateReelService{ctx: ctx, store: store, recorder: recorder}
}

type UpdateReelRequest struct {
	ReelId       primitive.ObjectID
	VideoUrl     string
	ThumbnailUrl string
	Caption      string
	Duration     float64
	MusicId      primitive.ObjectID
	Client       utils.ClientInfo
}

// UpdateReel applies the provided fields only.
func (s *UpdateReelService) UpdateReel(req *UpdateReelRequest) (*model.Reel, error) {
	reel, err := s.store.GetReelById(s.ctx, req.ReelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetReelById failed")
	}

	if req.VideoUrl != "" {
		reel.VideoUrl = req.VideoUrl
	}
	if req.ThumbnailUrl != "" {
		reel.ThumbnailUrl = req.ThumbnailUrl
	}
	if req.Caption != "" {
		reel.Caption = req.Caption
	}
	if req.Duration > 0 {
		reel.Duration = req.Duration
	}
	if !req.MusicId.IsZero() {
		reel.MusicId = req.MusicId
	}

	if err := s.store.SaveReel(s.ctx, reel); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveReel failed")
	}

	event := mq.NewActionEvent(reel.UserId.Hex(), model.ActionUpdateReel, "Reel", reel.ID.Hex())
	event.Device = req.Client.Device
	event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
	s.recorder.Record(s.ctx, event)

	return reel, nil
}
