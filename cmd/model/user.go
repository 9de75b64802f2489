package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username       string               `json:"username" bson:"username"`
	Mobile         string               `json:"mobile" bson:"mobile,omitempty"`
	Email          string               `json:"email" bson:"email,omitempty"`
	PasswordHash   string               `json:"-" bson:"passwordHash"`
	ProfilePicture string               `json:"profilePicture" bson:"profilePicture"`
	Bio            string               `json:"bio" bson:"bio"`
	Followers      []primitive.ObjectID `json:"followers" bson:"followers"`
	Following      []primitive.ObjectID `json:"following" bson:"following"`
	IsSuspended    bool                 `json:"isSuspended" bson:"isSuspended"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
}

// HasFollower reports whether userId already appears in the followers set.
func (u *User) HasFollower(userId primitive.ObjectID) bool {
	for _, id := range u.Followers {
		if id == userId {
			return true
		}
	}
	return false
}
