package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUserInfo(userId int64) (*model.User, error) {
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	return user, nil
}
