package reel

import (
	interaction "ReelHub.com/cmd/interaction/service"
	"ReelHub.com/cmd/reel/service"
	"ReelHub.com/pkg/mq"
)

var (
	store    service.ReelStore
	cache    service.TotalCache
	likes    *likeDeps
	recorder mq.Recorder
)

type likeDeps struct {
	reels    interaction.ReelStore
	comments interaction.CommentStore
}

// Init wires the handler package; called once from main. The like toggle
// lives in the interaction service, so its stores come in separately.
func Init(s service.ReelStore, c service.TotalCache, r mq.Recorder,
	likeReels interaction.ReelStore, likeComments interaction.CommentStore) {
	store = s
	cache = c
	recorder = r
	likes = &likeDeps{reels: likeReels, comments: likeComments}
}

type UploadReelParam struct {
	User         string  `json:"user"`
	VideoUrl     string  `json:"videoUrl"`
	ThumbnailUrl string  `json:"thumbnailUrl"`
	Caption      string  `json:"caption"`
	Duration     float64 `json:"duration"`
	Music        string  `json:"music"`
	Status       string  `json:"status"`
}

type UpdateReelParam struct {
	VideoUrl     string  `json:"videoUrl"`
	ThumbnailUrl string  `json:"thumbnailUrl"`
	Caption      string  `json:"caption"`
	Duration     float64 `json:"duration"`
	Music        string  `json:"music"`
}

type LikeReelParam struct {
	UserId string `json:"userId"`
}

type ShareReelParam struct {
	SharedBy string `json:"sharedBy"`
	SharedTo string `json:"sharedTo"`
}

type FeedParam struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}
