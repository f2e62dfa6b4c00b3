package service

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/cmd/model"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleLike flips the like link for (userId, target): present -> deleted,
// absent -> created. Returns the resulting liked state.
func (s *LikeService) ToggleLike(userId int64, target model.LikeTarget) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, errno.ParamErr.WithMessage(err.Error())
	}
	if err := s.checkTargetExists(target); err != nil {
		return false, err
	}

	// check-then-flip is not atomic; the mutex narrows the duplicate-insert
	// window for concurrent toggles from the same user.
	mutex := redis.LikeMutex(userId, target.Type, target.Id)
	if err := mutex.Lock(); err != nil {
		hlog.Warnf("like mutex lock failed: %v", err)
	} else {
		defer mutex.Unlock()
	}

	liked, err := db.IsLikeExist(s.ctx, userId, target)
	if err != nil {
		return false, errors.WithMessage(err, "dao.IsLikeExist failed")
	}
	if liked {
		if err := db.DeleteLike(s.ctx, userId, target); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteLike failed")
		}
		return false, nil
	}
	if err := db.CreateLike(s.ctx, userId, target); err != nil {
		return false, errors.WithMessage(err, "dao.CreateLike failed")
	}
	return true, nil
}

func (s *LikeService) checkTargetExists(target model.LikeTarget) error {
	switch target.Type {
	case constants.LikeTargetVideo:
		video, err := videodb.GetVideo(s.ctx, target.Id)
		if err != nil {
			return errors.WithMessage(err, "dao.GetVideo failed")
		}
		if video == nil {
			return errno.NotFoundErr.WithMessage("video not found")
		}
	case constants.LikeTargetComment:
		comment, err := db.GetCommentInfo(s.ctx, target.Id)
		if err != nil {
			return errors.WithMessage(err, "dao.GetCommentInfo failed")
		}
		if comment == nil {
			return errno.NotFoundErr.WithMessage("comment not found")
		}
	case constants.LikeTargetTweet:
		tweet, err := tweetdb.GetTweet(s.ctx, target.Id)
		if err != nil {
			return errors.WithMessage(err, "dao.GetTweet failed")
		}
		if tweet == nil {
			return errno.NotFoundErr.WithMessage("tweet not found")
		}
	}
	return nil
}
