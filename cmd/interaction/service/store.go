package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentStore is the slice of the document store the interaction services
// consume. Implemented by dal/db.CommentRepo; faked in tests.
type CommentStore interface {
	GetCommentById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	SaveComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context) ([]*model.Comment, error)
	GetReelTopComments(ctx context.Context, reelId primitive.ObjectID) ([]*model.Comment, error)
	GetReplies(ctx context.Context, parentId primitive.ObjectID) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
	DeleteReplies(ctx context.Context, parentId primitive.ObjectID) error
}

// ReelStore is the narrow reel access the like toggle needs.
type ReelStore interface {
	GetReelById(ctx context.Context, id primitive.ObjectID) (*model.Reel, error)
	SaveReel(ctx context.Context, reel *model.Reel) error
}
