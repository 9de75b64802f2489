package service

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteUserService struct {
	ctx   context.Context
	store UserStore
}

func NewDeleteUserService(ctx context.Context, store UserStore) *DeleteUserService {
	return &DeleteUserService{ctx: ctx, store: store}
}

// DeleteUser is a hard delete. Reels, comments and follower references held
// by other documents are left in place.
func (s *DeleteUserService) DeleteUser(id primitive.ObjectID) error {
	if err := s.store.DeleteUser(s.ctx, id); err != nil {
		return errors.WithMessage(err, "dao.DeleteUser failed")
	}
	return nil
}
