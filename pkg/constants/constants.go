package constants

import "time"

const (
	// Feed sampling defaults, matching the frontend contract.
	DefaultFeedLimit = 4
	DefaultFeedPage  = 1

	// Collections.
	UserCollection      = "users"
	ReelCollection      = "reels"
	CommentCollection   = "comments"
	MusicCollection     = "music"
	ActionLogCollection = "action_logs"

	// Cached published-reel total for the feed header.
	ReelTotalCacheKey = "reel:published:total"
	ReelTotalCacheTTL = time.Minute

	AccessTokenExpire = time.Hour
)
