package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/cmd/model"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/config"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	// unreachable redis, toggles fall back to the lock-free path
	config.ConfigInfo.Redis.Addr = "127.0.0.1:1"
	redis.Load()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := gdb.AutoMigrate(&model.Video{}, &model.Comment{}, &model.Tweet{}, &model.Like{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.DB = gdb
	videodb.DB = gdb
	tweetdb.DB = gdb
	return gdb
}

func TestToggleLike(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"
	if err := gdb.Create(&model.Video{VideoId: 1, UserId: 9, Title: "first", IsPublished: true, CreatedAt: now, UpdatedAt: now}).Error; err != nil {
		t.Fatalf("seed video failed: %v", err)
	}

	svc := NewLikeService(ctx)
	target := model.LikeTarget{Type: constants.LikeTargetVideo, Id: 1}

	t.Run("FirstToggleLikes", func(t *testing.T) {
		liked, err := svc.ToggleLike(7, target)
		if err != nil {
			t.Fatalf("ToggleLike failed: %v", err)
		}
		if !liked {
			t.Fatal("expected toggled-on state")
		}
		exist, err := db.IsLikeExist(ctx, 7, target)
		if err != nil {
			t.Fatalf("IsLikeExist failed: %v", err)
		}
		if !exist {
			t.Fatal("like row missing after toggle on")
		}
	})

	t.Run("SecondToggleUnlikes", func(t *testing.T) {
		liked, err := svc.ToggleLike(7, target)
		if err != nil {
			t.Fatalf("ToggleLike failed: %v", err)
		}
		if liked {
			t.Fatal("expected toggled-off state")
		}
		exist, err := db.IsLikeExist(ctx, 7, target)
		if err != nil {
			t.Fatalf("IsLikeExist failed: %v", err)
		}
		if exist {
			t.Fatal("like row survived toggle off")
		}
	})

	t.Run("MissingTargetIsNotFound", func(t *testing.T) {
		_, err := svc.ToggleLike(7, model.LikeTarget{Type: constants.LikeTargetVideo, Id: 99})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
			t.Fatalf("expected not-found, got %v", err)
		}
	})

	t.Run("InvalidTargetTypeIsBadRequest", func(t *testing.T) {
		_, err := svc.ToggleLike(7, model.LikeTarget{Type: "channel", Id: 1})
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Fatalf("expected bad request, got %v", err)
		}
	})
}
