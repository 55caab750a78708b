package cache

import (
	"context"

	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var S *redisstore.RedisStore

func NewCache() error {
	rdb := redis.NewClient(&redis.Options{
		Addr: viper.GetString("cache.redis_addr"),
		DB:   viper.GetInt("cache.redis_db"),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	S = redisstore.NewRedis(rdb)

	return nil
}
