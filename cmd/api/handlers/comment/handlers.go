package comment

import (
	"ReelHub.com/cmd/interaction/service"
	"ReelHub.com/pkg/mq"
)

var (
	store    service.CommentStore
	reels    service.ReelStore
	recorder mq.Recorder
)

// Init wires the handler package; called once from main.
func Init(s service.CommentStore, r service.ReelStore, rec mq.Recorder) {
	store = s
	reels = r
	recorder = rec
}

type CreateCommentParam struct {
	User          string `json:"user"`
	Reel          string `json:"reel"`
	Text          string `json:"text"`
	ParentComment string `json:"parentComment"`
}

type UpdateCommentParam struct {
	Text string `json:"text"`
}

type LikeCommentParam struct {
	UserId string `json:"userId"`
}
