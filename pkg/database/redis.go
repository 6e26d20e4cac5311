package database

import (
	"context"
	"time"

	"concert-booking/pkg/errs"
	"concert-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis opens a client and pings it. The caller owns Close.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errs.Wrapf(err, "ping redis %s", config.Addr)
	}

	return client, nil
}
