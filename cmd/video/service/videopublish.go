package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/es"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type TogglePublishService struct {
	ctx context.Context
}

func NewTogglePublishService(ctx context.Context) *TogglePublishService {
	return &TogglePublishService{ctx: ctx}
}

// TogglePublishStatus flips the publish flag after the ownership gate and
// keeps the search index in step.
func (s *TogglePublishService) TogglePublishStatus(userId, videoId int64) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("only the video owner can change its publish status")
	}

	video.IsPublished = !video.IsPublished
	if err := db.UpdateVideoInfo(s.ctx, videoId, map[string]interface{}{
		"is_published": video.IsPublished,
		"updated_at":   time.Now().Format(constants.TimeFormat),
	}); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideoInfo failed")
	}

	if video.IsPublished {
		if err := es.IndexVideo(s.ctx, video); err != nil {
			hlog.Warnf("index video %d failed: %v", video.VideoId, err)
		}
	} else {
		if err := es.DeleteVideo(s.ctx, video.VideoId); err != nil {
			hlog.Warnf("remove video %d from index failed: %v", video.VideoId, err)
		}
	}
	return video, nil
}
