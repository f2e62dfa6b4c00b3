package service

import (
	"context"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// VideoOwner 视频详情中的作者信息，附带订阅数据
type VideoOwner struct {
	*model.User
	SubscriberCount int64 `json:"subscriber_count"`
	IsSubscribed    bool  `json:"is_subscribed"`
}

// VideoDetail 视频详情视图
type VideoDetail struct {
	*model.Video
	Owner        *VideoOwner `json:"owner"`
	LikeCount    int64       `json:"like_count"`
	IsLiked      bool        `json:"is_liked"`
	CommentCount int64       `json:"comment_count"`
}

// GetVideoDetail composes the video page for the viewer, then applies the two
// side effects of a successful fetch: visit_count += 1 and a watch-history
// entry for the viewer. The side effects are independent writes with no
// rollback; a failure in between leaves partial state.
func (s *VideoDetailService) GetVideoDetail(videoId, viewerId int64) (*VideoDetail, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	owner, err := userdb.GetUser(s.ctx, video.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	subscriberCount, err := relationdb.GetSubscriberCount(s.ctx, video.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscriberCount failed")
	}
	isSubscribed, err := relationdb.IsSubscriptionExist(s.ctx, viewerId, video.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.IsSubscriptionExist failed")
	}

	target := model.LikeTarget{Type: constants.LikeTargetVideo, Id: videoId}
	likeCount, err := interactiondb.GetLikeCount(s.ctx, target)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikeCount failed")
	}
	isLiked, err := interactiondb.IsLikeExist(s.ctx, viewerId, target)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.IsLikeExist failed")
	}
	commentCount, err := interactiondb.GetVideoCommentCount(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCommentCount failed")
	}

	if err := db.IncrementVisitCount(s.ctx, videoId); err != nil {
		hlog.Warnf("increment visit count for video %d failed: %v", videoId, err)
	} else {
		video.VisitCount++
	}
	if err := userdb.AddWatchHistory(s.ctx, viewerId, videoId); err != nil {
		hlog.Warnf("add watch history for user %d failed: %v", viewerId, err)
	}

	return &VideoDetail{
		Video: video,
		Owner: &VideoOwner{
			User:            owner,
			SubscriberCount: subscriberCount,
			IsSubscribed:    isSubscribed,
		},
		LikeCount:    likeCount,
		IsLiked:      isLiked,
		CommentCount: commentCount,
	}, nil
}
