package service

import (
	"context"
	"sync"

	"ReelHub.com/cmd/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentTreeService struct {
	ctx   context.Context
	store CommentStore
}

func NewCommentTreeService(ctx context.Context, store CommentStore) *CommentTreeService {
	return &CommentTreeService{ctx: ctx, store: store}
}

// ListReelComments returns the reel's top-level comments newest first, each
// carrying its direct replies oldest first. Reply fetches are independent
// reads, so they fan out concurrently; results land in an index-addressed
// slice so the response order follows the top-level sort, not fetch
// completion order.
func (s *CommentTreeService) ListReelComments(reelId primitive.ObjectID) ([]*model.CommentWithReplies, error) {
	topLevel, err := s.store.GetReelTopComments(s.ctx, reelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetReelTopComments failed")
	}

	result := make([]*model.CommentWithReplies, len(topLevel))
	errs := make([]error, len(topLevel))

	var wg sync.WaitGroup
	for i, comment := range topLevel {
		wg.Add(1)
		go func(i int, comment *model.Comment) {
			defer wg.Done()
			replies, err := s.store.GetReplies(s.ctx, comment.ID)
			if err != nil {
				errs[i] = err
				return
			}
			result[i] = &model.CommentWithReplies{Comment: *comment, Replies: replies}
		}(i, comment)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetReplies failed")
		}
	}
	return result, nil
}
