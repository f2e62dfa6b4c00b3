package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err:%v", err)
	}
	return nil
}

// GetCommentInfo returns nil when the comment does not exist.
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Count(&count).Find(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCommentInfo failed,err:%v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": updatedAt,
		}).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed,err:%v", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed,err:%v", err)
	}
	return nil
}

func ListCommentsByVideo(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Count(&count).
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListCommentsByVideo failed,err:%v", err)
	}
	return comments, count, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoCommentCount failed,err:%v", err)
	}
	return count, nil
}

// GetCommentIdsByVideo feeds the like cascade on video delete.
func GetCommentIdsByVideo(ctx context.Context, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Select("comment_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCommentIdsByVideo failed,err:%v", err)
	}
	return list, nil
}

func DeleteCommentsByVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteCommentsByVideo failed,err:%v", err)
	}
	return nil
}
