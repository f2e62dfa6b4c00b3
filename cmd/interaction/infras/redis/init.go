package redis

import (
	"fmt"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

var (
	redisDB *goredislib.Client
	rs      *redsync.Redsync
)

func Load() {
	redisDB = goredislib.NewClient(&goredislib.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       2,
	})
	rs = redsync.New(goredis.NewPool(redisDB))
	hlog.Info("Interaction redis client initialized")
}

// LikeMutex serializes concurrent like toggles for one (user, target) pair.
func LikeMutex(userId int64, targetType string, targetId int64) *redsync.Mutex {
	return rs.NewMutex(fmt.Sprintf("lock:like:%d:%s:%d", userId, targetType, targetId))
}
