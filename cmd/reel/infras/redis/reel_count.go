package redis

import (
	"context"
	"strconv"

	"ReelHub.com/pkg/constants"
)

// Cache holds TTL'd aggregate counts so the feed header does not hit mongo
// on every request.
type Cache struct{}

func NewCache() *Cache {
	return &Cache{}
}

// GetPublishedTotal returns the cached published-reel count. The bool is
// false on a miss or when redis is down.
func (*Cache) GetPublishedTotal(ctx context.Context) (int64, bool) {
	if rdb == nil {
		return 0, false
	}
	val, err := rdb.Get(ctx, constants.ReelTotalCacheKey).Result()
	if err != nil {
		return 0, false
	}
	total, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

func (*Cache) SetPublishedTotal(ctx context.Context, total int64) {
	if rdb == nil {
		return
	}
	rdb.Set(ctx, constants.ReelTotalCacheKey, total, constants.ReelTotalCacheTTL)
}

// InvalidatePublishedTotal drops the cached count after a mutation that may
// change it.
func (*Cache) InvalidatePublishedTotal(ctx context.Context) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, constants.ReelTotalCacheKey)
}
