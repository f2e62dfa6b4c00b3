package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
)

func CreateLike(ctx context.Context, userId int64, target model.LikeTarget) error {
	if err := DB.WithContext(ctx).Create(&model.Like{
		UserId:     userId,
		TargetType: target.Type,
		TargetId:   target.Id,
		CreatedAt:  time.Now().Format(constants.TimeFormat),
	}).Error; err != nil {
		return errors.Wrapf(err, "CreateLike failed,err:%v", err)
	}
	return nil
}

func DeleteLike(ctx context.Context, userId int64, target model.LikeTarget) error {
	if err := DB.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, target.Type, target.Id).
		Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLike failed,err:%v", err)
	}
	return nil
}

func IsLikeExist(ctx context.Context, userId int64, target model.LikeTarget) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, target.Type, target.Id).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsLikeExist failed,err:%v", err)
	}
	return count > 0, nil
}

func GetLikeCount(ctx context.Context, target model.LikeTarget) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", target.Type, target.Id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetLikeCount failed,err:%v", err)
	}
	return count, nil
}

// GetLikedVideoIds returns the ids of videos the user has liked, most recent
// like first.
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userId, constants.LikeTargetVideo).
		Order("like_id DESC").Select("target_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetLikedVideoIds failed,err:%v", err)
	}
	return list, nil
}

// DeleteLikesByTarget removes every like pointing at one target (cascade).
func DeleteLikesByTarget(ctx context.Context, target model.LikeTarget) error {
	if err := DB.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", target.Type, target.Id).
		Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLikesByTarget failed,err:%v", err)
	}
	return nil
}

// DeleteLikesByTargets removes likes for a batch of same-typed targets.
func DeleteLikesByTargets(ctx context.Context, targetType string, targetIds []int64) error {
	if len(targetIds) == 0 {
		return nil
	}
	if err := DB.WithContext(ctx).
		Where("target_type = ? AND target_id IN (?)", targetType, targetIds).
		Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLikesByTargets failed,err:%v", err)
	}
	return nil
}

// CountLikesForVideos sums likes across a channel's videos for the dashboard.
func CountLikesForVideos(ctx context.Context, videoIds []int64) (int64, error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id IN (?)", constants.LikeTargetVideo, videoIds).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountLikesForVideos failed,err:%v", err)
	}
	return count, nil
}
