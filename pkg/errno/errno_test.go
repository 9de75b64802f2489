package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErrUnwraps(t *testing.T) {
	wrapped := errors.WithMessage(ReelNotExistErr, "dao.GetReelById failed")

	e := ConvertErr(wrapped)
	if e.ErrCode != ReelNotExistCode {
		t.Errorf("code = %d, want %d", e.ErrCode, ReelNotExistCode)
	}
	if e.ErrMsg != ReelNotExistErr.ErrMsg {
		t.Errorf("msg = %q, want %q", e.ErrMsg, ReelNotExistErr.ErrMsg)
	}
}

func TestConvertErrUnknown(t *testing.T) {
	e := ConvertErr(errors.New("connection reset"))
	if e.ErrCode != ServiceErrCode {
		t.Errorf("code = %d, want %d", e.ErrCode, ServiceErrCode)
	}
}

func TestWithMessageKeepsCode(t *testing.T) {
	e := RequestErr.WithMessage("Invalid email format")
	if e.ErrCode != ParamErrCode {
		t.Errorf("code = %d, want %d", e.ErrCode, ParamErrCode)
	}
	if e.ErrMsg != "Invalid email format" {
		t.Errorf("msg = %q", e.ErrMsg)
	}
	if RequestErr.ErrMsg == "Invalid email format" {
		t.Error("WithMessage mutated the shared value")
	}
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  ErrNo
		want int
	}{
		{RequestErr, 400},
		{UserAlreadyExistErr, 400},
		{PasswordErr, 400},
		{AlreadyFollowingErr, 400},
		{NotFollowingErr, 400},
		{AuthorizationFailed, 401},
		{UserNotExistErr, 404},
		{ReelNotExistErr, 404},
		{CommentNotExistErr, 404},
		{MusicNotExistErr, 404},
		{ServiceErr, 500},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("StatusCode(%d) = %d, want %d", tc.err.ErrCode, got, tc.want)
		}
	}
}
