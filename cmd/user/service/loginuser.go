package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx      context.Context
	store    UserStore
	recorder mq.Recorder
}

func NewLoginUserService(ctx context.Context, store UserStore, recorder mq.Recorder) *LoginUserService {
	return &LoginUserService{ctx: ctx, store: store, recorder: recorder}
}

// LoginUser checks the credentials and records a best-effort login event.
func (s *LoginUserService) LoginUser(email, password string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(s.ctx, email)
	if err != nil {
		if errno.ConvertErr(err).ErrCode == errno.UserNotExistCode {
			return nil, errno.PasswordErr
		}
		return nil, errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, errno.PasswordErr
	}

	s.recorder.Record(s.ctx, mq.NewActionEvent(
		user.ID.Hex(), model.ActionLogin, "User", user.ID.Hex()))
	return user, nil
}
