package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReelInfoService struct {
	ctx   context.Context
	store ReelStore
}

func NewReelInfoService(ctx context.Context, store ReelStore) *ReelInfoService {
	return &ReelInfoService{ctx: ctx, store: store}
}

func (s *ReelInfoService) GetReel(id primitive.ObjectID) (*model.Reel, error) {
	reel, err := s.store.GetReelById(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetReelById failed")
	}
	return reel, nil
}

func (s *ReelInfoService) ListReels() ([]*model.Reel, error) {
	reels, err := s.store.ListReels(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListReels failed")
	}
	return reels, nil
}
