package model

import "time"

// Action kinds recorded by the audit trail. Write-only from the request
// path; the MQ consumer persists them.
const (
	ActionLogin        = "login"
	ActionFollowUser   = "follow_user"
	ActionUnfollowUser = "unfollow_user"
	ActionUploadReel   = "upload_reel"
	ActionUpdateReel   = "update_reel"
	ActionDeleteReel   = "delete_reel"
	ActionLikeReel     = "like_reel"
	ActionUnlikeReel   = "unlike_reel"
	ActionShareReel    = "share_reel"
)

type ActionLocation struct {
	Ip      string `json:"ip" bson:"ip"`
	Country string `json:"country" bson:"country"`
	City    string `json:"city" bson:"city"`
	Pincode string `json:"pincode" bson:"pincode"`
}

type ActionLog struct {
	EventId    string         `json:"event_id" bson:"event_id"`
	UserId     string         `json:"user" bson:"user"`
	Action     string         `json:"action" bson:"action"`
	TargetType string         `json:"targetType" bson:"targetType"`
	TargetId   string         `json:"targetId" bson:"targetId"`
	Device     string         `json:"device" bson:"device"`
	Location   ActionLocation `json:"location" bson:"location"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
}
