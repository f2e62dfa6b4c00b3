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

type UpdateCoverService struct {
	ctx context.Context
}

func NewUpdateCoverService(ctx context.Context) *UpdateCoverService {
	return &UpdateCoverService{ctx: ctx}
}

func (s *UpdateCoverService) UpdateCover(userId int64, data []byte, contentType string) (*model.User, error) {
	if len(data) == 0 {
		return nil, errno.ParamErr.WithMessage("cover image file is required")
	}

	old, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if old == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	coverUrl, err := oss.UploadImage(s.ctx, data, fmt.Sprintf("cover/%d-%d", userId, time.Now().UnixMilli()), contentType)
	if err != nil {
		return nil, errno.OssErr.WithMessage(err.Error())
	}
	if err := db.UpdateCoverUrl(s.ctx, userId, coverUrl, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCoverUrl failed")
	}

	if old.CoverUrl != "" {
		if err := oss.Remove(s.ctx, old.CoverUrl); err != nil {
			hlog.Warnf("failed to delete old cover %s: %v", old.CoverUrl, err)
		}
	}

	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	return user, nil
}
