package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/es"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

type UploadVideoParams struct {
	UserId      int64
	Title       string
	Description string

	// local temp paths of the multipart uploads
	VideoPath string
	// optional; a thumbnail is cut from the video when empty
	ThumbnailPath        string
	ThumbnailContentType string
}

// UploadVideo probes the file, pushes video and thumbnail to the blob store
// and inserts the row. Blob uploads are checked before the insert; an object
// orphaned by a failed insert is an accepted leak.
func (s *VideoUploadService) UploadVideo(req *UploadVideoParams) (*model.Video, error) {
	if req.Title == "" {
		return nil, errno.ParamErr.WithMessage("title is required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("video file is required")
	}

	duration, err := utils.GetVideoDuration(req.VideoPath)
	if err != nil {
		hlog.Warnf("probe duration failed, storing 0: %v", err)
		duration = 0
	}

	vid := uuid.NewString()
	videoUrl, err := oss.UploadVideoFile(s.ctx, req.VideoPath, fmt.Sprintf("video/%s/video.mp4", vid))
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}

	thumbnailPath := req.ThumbnailPath
	thumbnailContentType := req.ThumbnailContentType
	if thumbnailPath == "" {
		thumbDir := filepath.Join(os.TempDir(), vid)
		defer os.RemoveAll(thumbDir)
		generated, err := utils.GetVideoThumbnail(req.VideoPath, thumbDir)
		if err != nil {
			hlog.Warnf("generate thumbnail failed: %v", err)
		} else {
			thumbnailPath = generated
			thumbnailContentType = "image/jpeg"
		}
	}
	var coverUrl string
	if thumbnailPath != "" {
		data, err := os.ReadFile(thumbnailPath)
		if err != nil {
			return nil, errors.WithMessage(err, "read thumbnail failed")
		}
		coverUrl, err = oss.UploadImage(s.ctx, data, fmt.Sprintf("thumbnail/%s", vid), thumbnailContentType)
		if err != nil {
			return nil, errno.OssErr.WithMessage(err.Error())
		}
	}

	now := time.Now().Format(constants.TimeFormat)
	video := &model.Video{
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}

	if err := es.IndexVideo(s.ctx, video); err != nil {
		hlog.Warnf("index video %d failed: %v", video.VideoId, err)
	}
	if producer != nil {
		event := &mq.VideoEvent{
			Type:      mq.VideoEventPublished,
			VideoID:   video.VideoId,
			UserID:    video.UserId,
			Timestamp: time.Now().Unix(),
			EventID:   uuid.NewString(),
		}
		if err := producer.PublishVideoEvent(s.ctx, event); err != nil {
			hlog.Warnf("publish video event failed: %v", err)
		}
	}
	return video, nil
}
