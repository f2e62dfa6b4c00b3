package service

import (
	"context"
	"fmt"
	"testing"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := gdb.AutoMigrate(&model.Video{}, &model.Subscription{}, &model.Like{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	videodb.DB = gdb
	relationdb.DB = gdb
	interactiondb.DB = gdb
	return gdb
}

func TestGetChannelStats(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"

	seed := []interface{}{
		&model.Video{VideoId: 1, UserId: 5, Title: "a", VisitCount: 3, IsPublished: true, CreatedAt: now, UpdatedAt: now},
		&model.Video{VideoId: 2, UserId: 5, Title: "b", VisitCount: 4, IsPublished: false, CreatedAt: now, UpdatedAt: now},
		&model.Subscription{SubscriberId: 9, ChannelId: 5, CreatedAt: now},
		&model.Subscription{SubscriberId: 9, ChannelId: 6, CreatedAt: now},
		&model.Like{UserId: 9, TargetType: constants.LikeTargetVideo, TargetId: 1, CreatedAt: now},
		&model.Like{UserId: 8, TargetType: constants.LikeTargetVideo, TargetId: 1, CreatedAt: now},
		&model.Like{UserId: 9, TargetType: constants.LikeTargetVideo, TargetId: 2, CreatedAt: now},
	}
	for _, row := range seed {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed %T failed: %v", row, err)
		}
	}

	svc := NewDashboardService(ctx)

	t.Run("AggregatesLifetimeNumbers", func(t *testing.T) {
		stats, err := svc.GetChannelStats(5)
		if err != nil {
			t.Fatalf("GetChannelStats failed: %v", err)
		}
		want := ChannelStats{TotalVideos: 2, TotalViews: 7, TotalLikes: 3, TotalSubscribers: 1}
		if *stats != want {
			t.Fatalf("stats mismatch: got %+v, want %+v", *stats, want)
		}
	})

	t.Run("SubscribersOnlyChannelReports", func(t *testing.T) {
		stats, err := svc.GetChannelStats(6)
		if err != nil {
			t.Fatalf("GetChannelStats failed: %v", err)
		}
		want := ChannelStats{TotalSubscribers: 1}
		if *stats != want {
			t.Fatalf("stats mismatch: got %+v, want %+v", *stats, want)
		}
	})

	t.Run("EmptyChannelIsNotFound", func(t *testing.T) {
		_, err := svc.GetChannelStats(7)
		if errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
			t.Fatalf("expected not-found, got %v", err)
		}
	})
}
