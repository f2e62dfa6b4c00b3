package service

import (
	"context"
	"time"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

// DeleteVideo removes the video after the ownership gate and cascades:
// likes on the video and on its comments, the comments themselves, playlist
// memberships and every user's watch-history entry. The steps run in order
// with no compensation; a failure partway leaves partial state.
func (s *VideoDeleteService) DeleteVideo(userId, videoId int64) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != userId {
		return errno.PermissionErr.WithMessage("only the video owner can delete it")
	}

	commentIds, err := interactiondb.GetCommentIdsByVideo(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetCommentIdsByVideo failed")
	}
	if err := interactiondb.DeleteLikesByTargets(s.ctx, constants.LikeTargetComment, commentIds); err != nil {
		return errors.WithMessage(err, "dao.DeleteLikesByTargets failed")
	}
	if err := interactiondb.DeleteLikesByTarget(s.ctx, model.LikeTarget{Type: constants.LikeTargetVideo, Id: videoId}); err != nil {
		return errors.WithMessage(err, "dao.DeleteLikesByTarget failed")
	}
	if err := interactiondb.DeleteCommentsByVideo(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.DeleteCommentsByVideo failed")
	}
	if err := playlistdb.RemoveVideoFromAllPlaylists(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.RemoveVideoFromAllPlaylists failed")
	}
	if err := userdb.RemoveVideoFromAllHistories(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.RemoveVideoFromAllHistories failed")
	}
	if err := db.DeleteVideo(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.DeleteVideo failed")
	}

	// blob deletes and the event are fire-and-forget
	if err := oss.Remove(s.ctx, video.VideoUrl); err != nil {
		hlog.Warnf("delete video object failed: %v", err)
	}
	if err := oss.Remove(s.ctx, video.CoverUrl); err != nil {
		hlog.Warnf("delete thumbnail object failed: %v", err)
	}
	if producer != nil {
		event := &mq.VideoEvent{
			Type:      mq.VideoEventDeleted,
			VideoID:   videoId,
			UserID:    userId,
			Timestamp: time.Now().Unix(),
			EventID:   uuid.NewString(),
		}
		if err := producer.PublishVideoEvent(s.ctx, event); err != nil {
			hlog.Warnf("publish video event failed: %v", err)
		}
	}
	return nil
}
