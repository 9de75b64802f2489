package service

import (
	"context"
	"testing"

	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
)

func TestCreateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewCreateUserService(context.Background(), store)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username: "mia",
		Email:    "mia@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID.IsZero() {
		t.Error("created user has no id")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in the clear")
	}
	if !utils.VerifyPassword("secret123", user.PasswordHash) {
		t.Error("stored hash does not verify against the password")
	}
	if user.Followers == nil || user.Following == nil {
		t.Error("follow sets must start as empty slices")
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewCreateUserService(context.Background(), newFakeUserStore())

	cases := []struct {
		name string
		req  *CreateUserRequest
	}{
		{"missing fields", &CreateUserRequest{Username: "mia"}},
		{"bad email", &CreateUserRequest{Username: "mia", Email: "not-an-email", Password: "secret123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := errno.ConvertErr(err).ErrCode; code != errno.ParamErrCode {
				t.Errorf("code = %d, want %d", code, errno.ParamErrCode)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewCreateUserService(context.Background(), store)

	req := &CreateUserRequest{Username: "mia", Email: "mia@example.com", Password: "secret123"}
	if _, err := svc.CreateUser(req); err != nil {
		t.Fatalf("first CreateUser failed: %v", err)
	}

	_, err := svc.CreateUser(req)
	if code := errCode(t, err); code != errno.UserExistCode {
		t.Errorf("duplicate code = %d, want %d", code, errno.UserExistCode)
	}
}

func TestLoginUser(t *testing.T) {
	store := newFakeUserStore()
	created, err := NewCreateUserService(context.Background(), store).CreateUser(&CreateUserRequest{
		Username: "mia",
		Email:    "mia@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	svc := NewLoginUserService(context.Background(), store, mq.NopRecorder{})

	user, err := svc.LoginUser("mia@example.com", "secret123")
	if err != nil {
		t.Fatalf("LoginUser failed: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("logged in as %v, want %v", user.ID, created.ID)
	}

	if _, err := svc.LoginUser("mia@example.com", "wrong"); errCode(t, err) != errno.PasswordErrCode {
		t.Error("wrong password must map to the credentials error")
	}
	if _, err := svc.LoginUser("nobody@example.com", "secret123"); errCode(t, err) != errno.PasswordErrCode {
		t.Error("unknown email must map to the credentials error, not a not-found")
	}
}
