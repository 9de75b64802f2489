package service

import (
	"context"
	"time"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserService struct {
	ctx   context.Context
	store UserStore
}

func NewCreateUserService(ctx context.Context, store UserStore) *CreateUserService {
	return &CreateUserService{ctx: ctx, store: store}
}

type CreateUserRequest struct {
	Username       string
	Email          string
	Password       string
	Mobile         string
	ProfilePicture string
	Bio            string
}

func (s *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("Username, email, and password are required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errno.RequestErr.WithMessage("Invalid email format")
	}

	if _, err := s.store.GetUserByEmail(s.ctx, req.Email); err == nil {
		return nil, errno.UserAlreadyExistErr
	} else if errno.ConvertErr(err).ErrCode != errno.UserNotExistCode {
		return nil, errors.WithMessage(err, "dao.GetUserByEmail failed")
	}

	passwordHash, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		Mobile:         req.Mobile,
		PasswordHash:   passwordHash,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		Followers:      []primitive.ObjectID{},
		Following:      []primitive.ObjectID{},
		CreatedAt:      time.Now(),
	}
	user, err = s.store.CreateUser(s.ctx, user)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	return user, nil
}
