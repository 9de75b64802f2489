package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	UserId        primitive.ObjectID   `json:"user" bson:"user"`
	ReelId        primitive.ObjectID   `json:"reel" bson:"reel"`
	Text          string               `json:"text" bson:"text"`
	Likes         []primitive.ObjectID `json:"likes" bson:"likes"`
	ParentComment *primitive.ObjectID  `json:"parentComment" bson:"parentComment"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// IsReply reports whether the comment hangs under another comment.
func (c *Comment) IsReply() bool {
	return c.ParentComment != nil
}

// CommentWithReplies is the projection returned by the reel comment listing,
// one reply level deep.
type CommentWithReplies struct {
	Comment `bson:",inline"`
	Replies []*Comment `json:"replies"`
}
