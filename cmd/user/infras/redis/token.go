package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// The refresh token issued at login is the only one the server will honour;
// logout deletes it, refresh rotates it.

func refreshTokenKey(userId int64) string {
	return fmt.Sprintf("refresh_token:%d", userId)
}

func SetRefreshToken(ctx context.Context, userId int64, token string, expiration time.Duration) error {
	if err := redisDB.Set(ctx, refreshTokenKey(userId), token, expiration).Err(); err != nil {
		hlog.Info("Redis set refresh token failed : ", err)
		return err
	}
	return nil
}

func GetRefreshToken(ctx context.Context, userId int64) (string, error) {
	token, err := redisDB.Get(ctx, refreshTokenKey(userId)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		hlog.Info("Redis get refresh token failed : ", err)
		return "", err
	}
	return token, nil
}

func DelRefreshToken(ctx context.Context, userId int64) error {
	if err := redisDB.Del(ctx, refreshTokenKey(userId)).Err(); err != nil {
		hlog.Info("Redis delete refresh token failed : ", err)
		return err
	}
	return nil
}
