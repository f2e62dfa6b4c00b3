package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

// GetVideo returns nil when the video does not exist.
func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Count(&count).Find(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed,err:%v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return &video, nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed,err:%v", err)
	}
	return nil
}

func UpdateVideoInfo(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoInfo failed,err:%v", err)
	}
	return nil
}

// IncrementVisitCount bumps the view counter by one in a single statement,
// keeping it monotone under concurrent fetches.
func IncrementVisitCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementVisitCount failed,err:%v", err)
	}
	return nil
}

// GetVideosByIds resolves a batch of ids, keyed by id.
func GetVideosByIds(ctx context.Context, videoIds []int64) (map[int64]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByIds failed,err:%v", err)
	}
	result := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		result[v.VideoId] = v
	}
	return result, nil
}

// ListVideosByUser pages through one owner's videos. Unpublished rows are
// only included when the owner asks for them.
func ListVideosByUser(ctx context.Context, userId, pageNum, pageSize int64, includeUnpublished bool) ([]*model.Video, int64, error) {
	var videos []*model.Video
	var count int64
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId)
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Count(&count).
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideosByUser failed,err:%v", err)
	}
	return videos, count, nil
}

// SearchVideos is the MySQL fallback used when Elasticsearch is not wired.
func SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var videos []*model.Video
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_published = ? AND title LIKE ?", true, "%"+keyword+"%").
		Count(&count).
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchVideos failed,err:%v", err)
	}
	return videos, count, nil
}

func GetVideoIdsByUser(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Select("video_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoIdsByUser failed,err:%v", err)
	}
	return list, nil
}

func GetVideoCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoCount failed,err:%v", err)
	}
	return count, nil
}

// GetTotalVisitCount sums views across all of one owner's videos.
func GetTotalVisitCount(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Select("SUM(visit_count)").Scan(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "GetTotalVisitCount failed,err:%v", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
