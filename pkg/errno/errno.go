package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode         = 0
	ServiceErrCode      = 10001
	ParamErrCode        = 10002
	AuthorizationCode   = 10003
	UserNotExistCode    = 10101
	UserExistCode       = 10102
	PasswordErrCode     = 10103
	AlreadyFollowCode   = 10104
	NotFollowingCode    = 10105
	ReelNotExistCode    = 10201
	CommentNotExistCode = 10301
	MusicNotExistCode   = 10401
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success             = NewErrNo(SuccessCode, "Success")
	ServiceErr          = NewErrNo(ServiceErrCode, "Server error")
	RequestErr          = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	AuthorizationFailed = NewErrNo(AuthorizationCode, "Authorization failed")
	UserNotExistErr     = NewErrNo(UserNotExistCode, "User not found")
	UserAlreadyExistErr = NewErrNo(UserExistCode, "User already exists with this email")
	PasswordErr         = NewErrNo(PasswordErrCode, "Invalid credentials")
	AlreadyFollowingErr = NewErrNo(AlreadyFollowCode, "Already following")
	NotFollowingErr     = NewErrNo(NotFollowingCode, "You are not following this user")
	ReelNotExistErr     = NewErrNo(ReelNotExistCode, "Reel not found")
	CommentNotExistErr  = NewErrNo(CommentNotExistCode, "Comment not found")
	MusicNotExistErr    = NewErrNo(MusicNotExistCode, "Music not found")
)

// ConvertErr converts any error to an ErrNo; unknown errors become
// ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	if err != nil {
		s.ErrMsg = err.Error()
	}
	return s
}

// StatusCode maps an error code onto the HTTP status the REST layer
// responds with.
func (e ErrNo) StatusCode() int {
	switch e.ErrCode {
	case SuccessCode:
		return 200
	case ParamErrCode, UserExistCode, PasswordErrCode, AlreadyFollowCode, NotFollowingCode:
		return 400
	case AuthorizationCode:
		return 401
	case UserNotExistCode, ReelNotExistCode, CommentNotExistCode, MusicNotExistCode:
		return 404
	default:
		return 500
	}
}
