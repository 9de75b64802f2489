package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetUserService struct {
	ctx   context.Context
	store UserStore
}

func NewGetUserService(ctx context.Context, store UserStore) *GetUserService {
	return &GetUserService{ctx: ctx, store: store}
}

func (s *GetUserService) GetUser(id primitive.ObjectID) (*model.User, error) {
	user, err := s.store.GetUserById(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserById failed")
	}
	return user, nil
}

func (s *GetUserService) ListUsers() ([]*model.User, error) {
	users, err := s.store.ListUsers(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListUsers failed")
	}
	return users, nil
}
