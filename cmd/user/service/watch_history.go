package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"github.com/pkg/errors"
)

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

// WatchedVideo 观看历史条目：视频 + 单个作者对象
type WatchedVideo struct {
	*model.Video
	Owner *model.User `json:"owner"`
}

// GetWatchHistory joins the caller's history against videos and each video's
// owner. Entries whose video has since disappeared are dropped silently.
func (s *WatchHistoryService) GetWatchHistory(userId int64) ([]*WatchedVideo, error) {
	videoIds, err := db.GetWatchHistoryVideoIds(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetWatchHistoryVideoIds failed")
	}
	if len(videoIds) == 0 {
		return []*WatchedVideo{}, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := db.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}

	history := make([]*WatchedVideo, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := videos[id]
		if !ok {
			continue
		}
		history = append(history, &WatchedVideo{
			Video: video,
			Owner: owners[video.UserId],
		})
	}
	return history, nil
}
