package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the document store the user services consume.
// Implemented by dal/db.UserRepo; faked in tests.
type UserStore interface {
	GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}
