package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/es"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoUpdateService struct {
	ctx context.Context
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx}
}

type UpdateVideoParams struct {
	UserId      int64
	VideoId     int64
	Title       string
	Description string

	// optional replacement thumbnail
	Thumbnail            []byte
	ThumbnailContentType string
}

// UpdateVideo changes title/description and optionally swaps the thumbnail,
// after the ownership gate.
func (s *VideoUpdateService) UpdateVideo(req *UpdateVideoParams) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != req.UserId {
		return nil, errno.PermissionErr.WithMessage("only the video owner can update it")
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().Format(constants.TimeFormat),
	}
	if req.Title != "" {
		fields["title"] = req.Title
		video.Title = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
		video.Description = req.Description
	}
	if len(req.Thumbnail) > 0 {
		coverUrl, err := oss.UploadImage(s.ctx, req.Thumbnail,
			fmt.Sprintf("thumbnail/%d-%d", req.VideoId, time.Now().UnixMilli()), req.ThumbnailContentType)
		if err != nil {
			return nil, errno.OssErr.WithMessage(err.Error())
		}
		old := video.CoverUrl
		fields["cover_url"] = coverUrl
		video.CoverUrl = coverUrl
		if old != "" {
			if err := oss.Remove(s.ctx, old); err != nil {
				hlog.Warnf("delete old thumbnail failed: %v", err)
			}
		}
	}

	if err := db.UpdateVideoInfo(s.ctx, req.VideoId, fields); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideoInfo failed")
	}
	if err := es.IndexVideo(s.ctx, video); err != nil {
		hlog.Warnf("reindex video %d failed: %v", video.VideoId, err)
	}
	return video, nil
}
