package redis

import (
	"context"

	"ReelHub.com/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdb *redis.Client

func Load() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis unavailable, feed totals fall back to mongo counts: %v", err)
	}
}
