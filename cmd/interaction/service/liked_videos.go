package service

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"github.com/pkg/errors"
)

type LikedVideosService struct {
	ctx context.Context
}

func NewLikedVideosService(ctx context.Context) *LikedVideosService {
	return &LikedVideosService{ctx: ctx}
}

// LikedVideo 点赞视频条目：恰好一个视频对象及其作者
type LikedVideo struct {
	*model.Video
	Owner *model.User `json:"owner"`
}

// GetLikedVideos joins the caller's video likes against videos and owners.
// Likes whose video has since been deleted are dropped.
func (s *LikedVideosService) GetLikedVideos(userId int64) ([]*LikedVideo, error) {
	videoIds, err := db.GetLikedVideoIds(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikedVideoIds failed")
	}
	if len(videoIds) == 0 {
		return []*LikedVideo{}, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := userdb.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}

	result := make([]*LikedVideo, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := videos[id]
		if !ok {
			continue
		}
		result = append(result, &LikedVideo{
			Video: video,
			Owner: owners[video.UserId],
		})
	}
	return result, nil
}
