package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ReelStatusPublished = "Published"

type Reel struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	UserId       primitive.ObjectID   `json:"user" bson:"user"`
	VideoUrl     string               `json:"videoUrl" bson:"videoUrl"`
	ThumbnailUrl string               `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Caption      string               `json:"caption" bson:"caption"`
	Duration     float64              `json:"duration" bson:"duration"`
	MusicId      primitive.ObjectID   `json:"music,omitempty" bson:"music,omitempty"`
	Status       string               `json:"status" bson:"status"`
	Likes        []primitive.ObjectID `json:"likes" bson:"likes"`
	Shares       []ReelShare          `json:"shares" bson:"shares"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
}

type ReelShare struct {
	SharedBy primitive.ObjectID `json:"sharedBy" bson:"sharedBy"`
	SharedTo primitive.ObjectID `json:"sharedTo" bson:"sharedTo"`
	SharedAt time.Time          `json:"sharedAt" bson:"sharedAt"`
}
