package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateUserService struct {
	ctx   context.Context
	store UserStore
}

func NewUpdateUserService(ctx context.Context, store UserStore) *UpdateUserService {
	return &UpdateUserService{ctx: ctx, store: store}
}

type UpdateUserRequest struct {
	UserId          primitive.ObjectID
	Username        string
	ProfilePicture  string
	Bio             string
	CurrentPassword string
	NewPassword     string
	IsSuspended     *bool
}

// UpdateUser applies the provided fields only; a password change requires
// the current password to match.
func (s *UpdateUserService) UpdateUser(req *UpdateUserRequest) (*model.User, error) {
	user, err := s.store.GetUserById(s.ctx, req.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserById failed")
	}

	if req.CurrentPassword != "" && req.NewPassword != "" {
		if !utils.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
			return nil, errno.PasswordErr.WithMessage("Current password is incorrect")
		}
		hash, err := utils.Crypt(req.NewPassword)
		if err != nil {
			return nil, errors.WithMessage(err, "Password fail to crypt")
		}
		user.PasswordHash = hash
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.IsSuspended != nil {
		user.IsSuspended = *req.IsSuspended
	}

	if err := s.store.SaveUser(s.ctx, user); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveUser failed")
	}
	return user, nil
}
