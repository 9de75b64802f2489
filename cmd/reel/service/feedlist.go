package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/constants"
	"github.com/pkg/errors"
)

type FeedListService struct {
	ctx   context.Context
	store ReelStore
	cache TotalCache
}

func NewFeedListService(ctx context.Context, store ReelStore, cache TotalCache) *FeedListService {
	return &FeedListService{ctx: ctx, store: store, cache: cache}
}

type FeedList struct {
	Reels       []*model.Reel `json:"reels"`
	Total       int64         `json:"total"`
	CurrentPage int           `json:"currentPage"`
}

// FeedList returns a random sample of published reels plus the published
// total. Every call re-draws from the full published set; page is advisory
// metadata for the client, not a window into an ordering.
func (s *FeedListService) FeedList(page, limit int) (*FeedList, error) {
	if page < 1 {
		page = constants.DefaultFeedPage
	}
	if limit < 1 {
		limit = constants.DefaultFeedLimit
	}

	total, ok := s.cache.GetPublishedTotal(s.ctx)
	if !ok {
		var err error
		total, err = s.store.CountPublished(s.ctx)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.CountPublished failed")
		}
		s.cache.SetPublishedTotal(s.ctx, total)
	}

	reels := make([]*model.Reel, 0)
	if total > 0 {
		var err error
		reels, err = s.store.SamplePublished(s.ctx, int64(limit))
		if err != nil {
			return nil, errors.WithMessage(err, "dao.SamplePublished failed")
		}
	}

	return &FeedList{Reels: reels, Total: total, CurrentPage: page}, nil
}
