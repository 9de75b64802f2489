package db

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/constants"
	"ReelHub.com/pkg/database"
	"ReelHub.com/pkg/errno"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo() *UserRepo {
	return &UserRepo{coll: database.Collection(constants.UserCollection)}
}

func (r *UserRepo) GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, errno.UserNotExistErr
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, errno.UserNotExistErr
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// SaveUser replaces the whole document, mirroring a mongoose save.
func (r *UserRepo) SaveUser(ctx context.Context, user *model.User) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]*model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
