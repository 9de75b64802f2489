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

type MusicRepo struct {
	coll *mongo.Collection
}

func NewMusicRepo() *MusicRepo {
	return &MusicRepo{coll: database.Collection(constants.MusicCollection)}
}

func (r *MusicRepo) GetMusicById(ctx context.Context, id primitive.ObjectID) (*model.Music, error) {
	music := &model.Music{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(music)
	if err == mongo.ErrNoDocuments {
		return nil, errno.MusicNotExistErr
	}
	if err != nil {
		return nil, err
	}
	return music, nil
}

func (r *MusicRepo) CreateMusic(ctx context.Context, music *model.Music) (*model.Music, error) {
	res, err := r.coll.InsertOne(ctx, music)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		music.ID = oid
	}
	return music, nil
}

func (r *MusicRepo) ListMusic(ctx context.Context) ([]*model.Music, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tracks := make([]*model.Music, 0)
	if err := cursor.All(ctx, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *MusicRepo) DeleteMusic(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
