package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Music struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Artist    string             `json:"artist" bson:"artist"`
	Url       string             `json:"url" bson:"url"`
	Duration  float64            `json:"duration" bson:"duration"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
