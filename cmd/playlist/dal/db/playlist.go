package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed,err:%v", err)
	}
	return nil
}

// GetPlaylist returns nil when the playlist does not exist.
func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Count(&count).Find(&playlist).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylist failed,err:%v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return &playlist, nil
}

func UpdatePlaylistInfo(ctx context.Context, playlistId int64, name, description, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"updated_at":  updatedAt,
		}).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylistInfo failed,err:%v", err)
	}
	return nil
}

// DeletePlaylist removes the playlist row and its membership rows.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist memberships failed,err:%v", err)
	}
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed,err:%v", err)
	}
	return nil
}

func ListPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).Find(&playlists).Error; err != nil {
		return nil, errors.Wrapf(err, "ListPlaylistsByUser failed,err:%v", err)
	}
	return playlists, nil
}

func IsVideoInPlaylist(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsVideoInPlaylist failed,err:%v", err)
	}
	return count > 0, nil
}

func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Create(&model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		CreatedAt:  time.Now().Format(constants.TimeFormat),
	}).Error; err != nil {
		return errors.Wrapf(err, "AddVideoToPlaylist failed,err:%v", err)
	}
	return nil
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemoveVideoFromPlaylist failed,err:%v", err)
	}
	return nil
}

func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).Select("video_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylistVideoIds failed,err:%v", err)
	}
	return list, nil
}

// RemoveVideoFromAllPlaylists scrubs a deleted video from every playlist.
func RemoveVideoFromAllPlaylists(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemoveVideoFromAllPlaylists failed,err:%v", err)
	}
	return nil
}
