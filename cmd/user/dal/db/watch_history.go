package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
)

// AddWatchHistory records that the user has watched the video. Set semantics:
// an entry that already exists is left alone.
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return errors.Wrapf(err, "AddWatchHistory failed,err:%v", err)
	}
	if count > 0 {
		return nil
	}
	if err := DB.WithContext(ctx).Create(&model.WatchHistory{
		UserId:    userId,
		VideoId:   videoId,
		CreatedAt: time.Now().Format(constants.TimeFormat),
	}).Error; err != nil {
		return errors.Wrapf(err, "AddWatchHistory failed,err:%v", err)
	}
	return nil
}

// GetWatchHistoryVideoIds returns the watched video ids in stored order.
func GetWatchHistoryVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ?", userId).Select("video_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetWatchHistoryVideoIds failed,err:%v", err)
	}
	return list, nil
}

// RemoveVideoFromAllHistories scrubs a deleted video from every user's history.
func RemoveVideoFromAllHistories(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.WatchHistory{}).Error; err != nil {
		return errors.Wrapf(err, "RemoveVideoFromAllHistories failed,err:%v", err)
	}
	return nil
}
