package service

import (
	"context"
	"time"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

func (s *ChangePasswordService) ChangePassword(userId int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return errno.ParamErr.WithMessage("new password is required")
	}

	stored, err := db.GetUserPassword(s.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserPassword failed")
	}
	if _, ok := utils.VerifyPassword(oldPassword, stored); !ok {
		return errno.ParamErr.WithMessage("old password is wrong")
	}

	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return errors.WithMessage(err, "hash password failed")
	}
	if err := db.UpdateUserPassword(s.ctx, userId, hashed, time.Now().Format(constants.TimeFormat)); err != nil {
		return errors.WithMessage(err, "dao.UpdateUserPassword failed")
	}
	return nil
}
