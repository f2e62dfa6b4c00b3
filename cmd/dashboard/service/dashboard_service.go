package service

import (
	"context"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats aggregates a channel's lifetime numbers for its owner.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// GetChannelStats sums up the caller's channel. A channel with neither
// videos nor subscribers has nothing to report and is treated as absent.
func (s *DashboardService) GetChannelStats(userId int64) (*ChannelStats, error) {
	videoCount, err := videodb.GetVideoCount(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	subscriberCount, err := relationdb.GetSubscriberCount(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	if videoCount == 0 && subscriberCount == 0 {
		return nil, errno.NotFoundErr.WithMessage("channel stats not found")
	}

	totalViews, err := videodb.GetTotalVisitCount(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	videoIds, err := videodb.GetVideoIdsByUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	var totalLikes int64
	if len(videoIds) > 0 {
		totalLikes, err = interactiondb.CountLikesForVideos(s.ctx, videoIds)
		if err != nil {
			return nil, err
		}
	}
	return &ChannelStats{
		TotalVideos:      videoCount,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
		TotalSubscribers: subscriberCount,
	}, nil
}

// GetChannelVideos lists everything the caller has uploaded, unpublished
// rows included since the caller is always the owner here.
func (s *DashboardService) GetChannelVideos(userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	return videodb.ListVideosByUser(s.ctx, userId, pageNum, pageSize, true)
}
