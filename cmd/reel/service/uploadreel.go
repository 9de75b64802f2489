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

type UploadReelService struct {
	ctx      context.Context
	store    ReelStore
	cache    TotalCache
	recorder mq.Recorder
}

func NewUploadReelService(ctx context.Context, store ReelStore, cache TotalCache, recorder mq.Recorder) *UploadReelService {
	return &UploadReelService{ctx: ctx, store: store, cache: cache, recorder: recorder}
}

type UploadReelRequest struct {
	UserId       primitive.ObjectID
	VideoUrl     string
	ThumbnailUrl string
	Caption      string
	Duration     float64
	MusicId      primitive.ObjectID
	Status       string
	Client       utils.ClientInfo
}

func (s *UploadReelService) UploadReel(req *UploadReelRequest) (*model.Reel, error) {
	if req.UserId.IsZero() || req.VideoUrl == "" {
		return nil, errno.RequestErr.WithMessage("User ID or Video Url missing!")
	}

	reel := &model.Reel{
		UserId:       req.UserId,
		VideoUrl:     req.VideoUrl,
		ThumbnailUrl: req.ThumbnailUrl,
		Caption:      req.Caption,
		Duration:     req.Duration,
		MusicId:      req.MusicId,
		Status:       req.Status,
		Likes:        []primitive.ObjectID{},
		Shares:       []model.ReelShare{},
		CreatedAt:    time.Now(),
	}
	if reel.Status == "" {
		reel.Status = model.ReelStatusPublished
	}

	reel, err := s.store.CreateReel(s.ctx, reel)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateReel failed")
	}
	s.cache.InvalidatePublishedTotal(s.ctx)

	event := mq.NewActionEvent(req.UserId.Hex(), model.ActionUploadReel, "Reel", reel.ID.Hex())
	event.Device = req.Client.Device
	event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
	s.recorder.Record(s.ctx, event)

	return reel, nil
}
