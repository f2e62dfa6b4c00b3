package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

// UpdateAccount changes the caller's own profile fields.
func (s *UpdateUserService) UpdateAccount(userId int64, fullName, email string) (*model.User, error) {
	if fullName == "" && email == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	if err := db.UpdateAccount(s.ctx, userId, fullName, email, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateAccount failed")
	}
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	return user, nil
}
