package music

import (
	"ReelHub.com/cmd/music/service"
)

var store service.MusicStore

// Init wires the handler package; called once from main.
func Init(s service.MusicStore) {
	store = s
}

type CreateMusicParam struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Url      string  `json:"url"`
	Duration float64 `json:"duration"`
}
