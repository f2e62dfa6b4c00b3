package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/relation/infras/redis"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/config"
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
	if err := gdb.AutoMigrate(&model.Subscription{}, &userdb.UserWithPassword{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.DB = gdb
	userdb.DB = gdb
	return gdb
}

func TestToggleSubscription(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"
	if err := gdb.Create(&userdb.UserWithPassword{UserId: 2, UserName: "channel", Email: "c@example.com", CreatedAt: now, UpdatedAt: now}).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	svc := NewRelationService(ctx)

	t.Run("SelfSubscribeIsBadRequest", func(t *testing.T) {
		_, err := svc.ToggleSubscription(2, 2)
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("MissingChannelIsNotFound", func(t *testing.T) {
		_, err := svc.ToggleSubscription(1, 99)
		if errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
			t.Fatalf("expected not-found, got %v", err)
		}
	})

	t.Run("FirstToggleSubscribes", func(t *testing.T) {
		subscribed, err := svc.ToggleSubscription(1, 2)
		if err != nil {
			t.Fatalf("ToggleSubscription failed: %v", err)
		}
		if !subscribed {
			t.Fatal("expected subscribed state")
		}
		exist, err := db.IsSubscriptionExist(ctx, 1, 2)
		if err != nil {
			t.Fatalf("IsSubscriptionExist failed: %v", err)
		}
		if !exist {
			t.Fatal("subscription row missing after toggle on")
		}
	})

	t.Run("SecondToggleUnsubscribes", func(t *testing.T) {
		subscribed, err := svc.ToggleSubscription(1, 2)
		if err != nil {
			t.Fatalf("ToggleSubscription failed: %v", err)
		}
		if subscribed {
			t.Fatal("expected unsubscribed state")
		}
		exist, err := db.IsSubscriptionExist(ctx, 1, 2)
		if err != nil {
			t.Fatalf("IsSubscriptionExist failed: %v", err)
		}
		if exist {
			t.Fatal("subscription row survived toggle off")
		}
	})
}
