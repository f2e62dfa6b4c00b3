package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type UpdateAvatarService struct {
	ctx context.Context
}

func NewUpdateAvatarService(ctx context.Context) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx}
}

// UpdateAvatar uploads the new image, persists its URL and then deletes the
// previous object best effort.
func (s *UpdateAvatarService) UpdateAvatar(userId int64, data []byte, contentType string) (*model.User, error) {
	if len(data) == 0 {
		return nil, errno.ParamErr.WithMessage("avatar file is required")
	}

	old, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if old == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	avatarUrl, err := oss.UploadImage(s.ctx, data, fmt.Sprintf("avatar/%d-%d", userId, time.Now().UnixMilli()), contentType)
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}
	if err := db.UpdateAvatarUrl(s.ctx, userId, avatarUrl, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateAvatarUrl failed")
	}

	if old.AvatarUrl != "" {
		if err := oss.Remove(s.ctx, old.AvatarUrl); err != nil {
			hlog.Warnf("failed to delete old avatar %s: %v", old.AvatarUrl, err)
		}
	}

	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	return user, nil
}
