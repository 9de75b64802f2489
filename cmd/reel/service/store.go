package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReelStore is the slice of the document store the reel services consume.
// Implemented by dal/db.ReelRepo; faked in tests.
type ReelStore interface {
	GetReelById(ctx context.Context, id primitive.ObjectID) (*model.Reel, error)
	CreateReel(ctx context.Context, reel *model.Reel) (*model.Reel, error)
	SaveReel(ctx context.Context, reel *model.Reel) error
	ListReels(ctx context.Context) ([]*model.Reel, error)
	DeleteReel(ctx context.Context, id primitive.ObjectID) error
	CountPublished(ctx context.Context) (int64, error)
	SamplePublished(ctx context.Context, size int64) ([]*model.Reel, error)
}

// TotalCache caches the published-reel total for the feed header. The redis
// implementation degrades to misses when the server is down.
type TotalCache interface {
	GetPublishedTotal(ctx context.Context) (int64, bool)
	SetPublishedTotal(ctx context.Context, total int64)
	InvalidatePublishedTotal(ctx context.Context)
}
