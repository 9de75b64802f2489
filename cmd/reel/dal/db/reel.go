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

type ReelRepo struct {
	coll *mongo.Collection
}

func NewReelRepo() *ReelRepo {
	return &ReelRepo{coll: database.Collection(constants.ReelCollection)}
}

func (r *ReelRepo) GetReelById(ctx context.Context, id primitive.ObjectID) (*model.Reel, error) {
	reel := &model.Reel{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(reel)
	if err == mongo.ErrNoDocuments {
		return nil, errno.ReelNotExistErr
	}
	if err != nil {
		return nil, err
	}
	return reel, nil
}

func (r *ReelRepo) CreateReel(ctx context.Context, reel *model.Reel) (*model.Reel, error) {
	res, err := r.coll.InsertOne(ctx, reel)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reel.ID = oid
	}
	return reel, nil
}

func (r *ReelRepo) SaveReel(ctx context.Context, reel *model.Reel) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": reel.ID}, reel)
	return err
}

func (r *ReelRepo) ListReels(ctx context.Context) ([]*model.Reel, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reels := make([]*model.Reel, 0)
	if err := cursor.All(ctx, &reels); err != nil {
		return nil, err
	}
	return reels, nil
}

func (r *ReelRepo) DeleteReel(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ReelRepo) CountPublished(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": model.ReelStatusPublished})
}

// SamplePublished draws a uniform random sample, without replacement, from
// the published set.
func (r *ReelRepo) SamplePublished(ctx context.Context, size int64) ([]*model.Reel, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.ReelStatusPublished}}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reels := make([]*model.Reel, 0)
	if err := cursor.All(ctx, &reels); err != nil {
		return nil, err
	}
	return reels, nil
}
