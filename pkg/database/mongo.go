package database

import (
	"context"
	"time"

	"ReelHub.com/config"
	"ReelHub.com/pkg/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Init connects the shared Mongo client and ensures the unique indexes the
// user schema relies on.
func Init() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(config.ConfigInfo.Mongo.Uri))
	if err != nil {
		panic(err)
	}
	if err = Client.Ping(ctx, nil); err != nil {
		panic(err)
	}
	DB = Client.Database(config.ConfigInfo.Mongo.Database)

	ensureUserIndexes(ctx)
}

func ensureUserIndexes(ctx context.Context) {
	sparse := options.Index().SetUnique(true).SetSparse(true)
	_, err := DB.Collection(constants.UserCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobile", Value: 1}}, Options: sparse},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: sparse},
	})
	if err != nil {
		panic(err)
	}
}

func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}
