package service

import (
	"context"
	"fmt"
	"testing"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newDeleteTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := gdb.AutoMigrate(&model.Video{}, &model.Comment{}, &model.Like{},
		&model.PlaylistVideo{}, &model.WatchHistory{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.DB = gdb
	interactiondb.DB = gdb
	playlistdb.DB = gdb
	userdb.DB = gdb
	return gdb
}

func TestDeleteVideo(t *testing.T) {
	gdb := newDeleteTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"

	seed := []interface{}{
		&model.Video{VideoId: 10, UserId: 1, Title: "doomed", IsPublished: true, CreatedAt: now, UpdatedAt: now},
		&model.Video{VideoId: 11, UserId: 1, Title: "survivor", IsPublished: true, CreatedAt: now, UpdatedAt: now},
		&model.Comment{CommentId: 20, VideoId: 10, UserId: 3, Content: "nice", CreatedAt: now, UpdatedAt: now},
		&model.Comment{CommentId: 21, VideoId: 11, UserId: 3, Content: "also nice", CreatedAt: now, UpdatedAt: now},
		&model.Like{UserId: 3, TargetType: constants.LikeTargetVideo, TargetId: 10, CreatedAt: now},
		&model.Like{UserId: 1, TargetType: constants.LikeTargetComment, TargetId: 20, CreatedAt: now},
		&model.Like{UserId: 3, TargetType: constants.LikeTargetVideo, TargetId: 11, CreatedAt: now},
		&model.PlaylistVideo{PlaylistId: 5, VideoId: 10, CreatedAt: now},
		&model.WatchHistory{UserId: 3, VideoId: 10, CreatedAt: now},
	}
	for _, row := range seed {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed %T failed: %v", row, err)
		}
	}

	svc := NewVideoDeleteService(ctx)

	t.Run("NonOwnerIsRejected", func(t *testing.T) {
		err := svc.DeleteVideo(2, 10)
		if errno.ConvertErr(err).ErrCode != errno.PermErrCode {
			t.Fatalf("expected permission error, got %v", err)
		}
		video, err := db.GetVideo(ctx, 10)
		if err != nil {
			t.Fatalf("GetVideo failed: %v", err)
		}
		if video == nil {
			t.Fatal("video removed despite rejected delete")
		}
	})

	t.Run("MissingVideoIsNotFound", func(t *testing.T) {
		err := svc.DeleteVideo(1, 99)
		if errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
			t.Fatalf("expected not-found, got %v", err)
		}
	})

	t.Run("OwnerDeleteCascades", func(t *testing.T) {
		if err := svc.DeleteVideo(1, 10); err != nil {
			t.Fatalf("DeleteVideo failed: %v", err)
		}
		video, err := db.GetVideo(ctx, 10)
		if err != nil {
			t.Fatalf("GetVideo failed: %v", err)
		}
		if video != nil {
			t.Fatal("video row survived delete")
		}

		counts := map[string]int64{}
		for name, q := range map[string]*gorm.DB{
			"comments":        gdb.Model(&model.Comment{}).Where("video_id = ?", 10),
			"video likes":     gdb.Model(&model.Like{}).Where("target_type = ? AND target_id = ?", constants.LikeTargetVideo, 10),
			"comment likes":   gdb.Model(&model.Like{}).Where("target_type = ? AND target_id = ?", constants.LikeTargetComment, 20),
			"playlist rows":   gdb.Model(&model.PlaylistVideo{}).Where("video_id = ?", 10),
			"watch histories": gdb.Model(&model.WatchHistory{}).Where("video_id = ?", 10),
		} {
			var count int64
			if err := q.Count(&count).Error; err != nil {
				t.Fatalf("count %s failed: %v", name, err)
			}
			counts[name] = count
		}
		for name, count := range counts {
			if count != 0 {
				t.Errorf("%s left behind after cascade: %d", name, count)
			}
		}
	})

	t.Run("OtherVideosUntouched", func(t *testing.T) {
		video, err := db.GetVideo(ctx, 11)
		if err != nil {
			t.Fatalf("GetVideo failed: %v", err)
		}
		if video == nil {
			t.Fatal("unrelated video removed by cascade")
		}
		var comments, likes int64
		if err := gdb.Model(&model.Comment{}).Where("video_id = ?", 11).Count(&comments).Error; err != nil {
			t.Fatalf("count comments failed: %v", err)
		}
		if err := gdb.Model(&model.Like{}).Where("target_type = ? AND target_id = ?", constants.LikeTargetVideo, 11).Count(&likes).Error; err != nil {
			t.Fatalf("count likes failed: %v", err)
		}
		if comments != 1 || likes != 1 {
			t.Fatalf("unrelated rows removed: comments=%d likes=%d", comments, likes)
		}
	})
}
