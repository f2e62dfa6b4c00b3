package service

import (
	"context"
	"fmt"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/playlist/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
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
	if err := gdb.AutoMigrate(&model.Playlist{}, &model.PlaylistVideo{}, &model.Video{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.DB = gdb
	videodb.DB = gdb
	return gdb
}

func TestAddVideo(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"

	seed := []interface{}{
		&model.Playlist{PlaylistId: 1, UserId: 4, Name: "watch later", CreatedAt: now, UpdatedAt: now},
		&model.Video{VideoId: 7, UserId: 9, Title: "clip", IsPublished: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, row := range seed {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed %T failed: %v", row, err)
		}
	}

	svc := NewPlaylistService(ctx)

	t.Run("NonOwnerIsRejected", func(t *testing.T) {
		err := svc.AddVideo(5, 1, 7)
		if errno.ConvertErr(err).ErrCode != errno.PermErrCode {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("MissingVideoIsNotFound", func(t *testing.T) {
		err := svc.AddVideo(4, 1, 99)
		if errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
			t.Fatalf("expected not-found, got %v", err)
		}
	})

	t.Run("FirstAddSucceeds", func(t *testing.T) {
		if err := svc.AddVideo(4, 1, 7); err != nil {
			t.Fatalf("AddVideo failed: %v", err)
		}
		exists, err := db.IsVideoInPlaylist(ctx, 1, 7)
		if err != nil {
			t.Fatalf("IsVideoInPlaylist failed: %v", err)
		}
		if !exists {
			t.Fatal("membership row missing after add")
		}
	})

	t.Run("DuplicateAddIsBadRequest", func(t *testing.T) {
		err := svc.AddVideo(4, 1, 7)
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Fatalf("expected bad request, got %v", err)
		}
		var count int64
		if err := gdb.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? AND video_id = ?", 1, 7).Count(&count).Error; err != nil {
			t.Fatalf("count memberships failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected a single membership row, got %d", count)
		}
	})
}

func TestUpdatePlaylistOwnership(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	now := "2025-01-02 03:04:05"
	if err := gdb.Create(&model.Playlist{PlaylistId: 2, UserId: 4, Name: "mine", CreatedAt: now, UpdatedAt: now}).Error; err != nil {
		t.Fatalf("seed playlist failed: %v", err)
	}

	svc := NewPlaylistService(ctx)

	t.Run("NonOwnerCannotRename", func(t *testing.T) {
		_, err := svc.UpdatePlaylist(5, 2, "stolen", "")
		if errno.ConvertErr(err).ErrCode != errno.PermErrCode {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("OwnerRenames", func(t *testing.T) {
		playlist, err := svc.UpdatePlaylist(4, 2, "renamed", "")
		if err != nil {
			t.Fatalf("UpdatePlaylist failed: %v", err)
		}
		if playlist.Name != "renamed" {
			t.Fatalf("unexpected name: %s", playlist.Name)
		}
	})
}
