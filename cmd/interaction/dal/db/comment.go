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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo struct {
	coll *mongo.Collection
}

func NewCommentRepo() *CommentRepo {
	return &CommentRepo{coll: database.Collection(constants.CommentCollection)}
}

func (r *CommentRepo) GetCommentById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment := &model.Comment{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(comment)
	if err == mongo.ErrNoDocuments {
		return nil, errno.CommentNotExistErr
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepo) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return comment, nil
}

func (r *CommentRepo) SaveComment(ctx context.Context, comment *model.Comment) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": comment.ID}, comment)
	return err
}

func (r *CommentRepo) ListComments(ctx context.Context) ([]*model.Comment, error) {
	return r.findSorted(ctx, bson.M{}, nil)
}

// GetReelTopComments returns the top-level comments of a reel, newest
// first.
func (r *CommentRepo) GetReelTopComments(ctx context.Context, reelId primitive.ObjectID) ([]*model.Comment, error) {
	filter := bson.M{"reel": reelId, "parentComment": nil}
	return r.findSorted(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}

// GetReplies returns the direct replies of a comment, oldest first.
func (r *CommentRepo) GetReplies(ctx context.Context, parentId primitive.ObjectID) ([]*model.Comment, error) {
	filter := bson.M{"parentComment": parentId}
	return r.findSorted(ctx, filter, bson.D{{Key: "createdAt", Value: 1}})
}

func (r *CommentRepo) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteReplies removes every direct reply of a comment.
func (r *CommentRepo) DeleteReplies(ctx context.Context, parentId primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"parentComment": parentId})
	return err
}

func (r *CommentRepo) findSorted(ctx context.Context, filter bson.M, sort bson.D) ([]*model.Comment, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]*model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
