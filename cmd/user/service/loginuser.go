package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

func (s *LoginUserService) LoginUser(username, password string) (*model.User, error, bool) {
	user, err, flag := db.CheckUser(s.ctx, username, password)
	if err != nil || !flag {
		return nil, errors.WithMessage(err, "dao.CheckUser failed"), false
	}
	return user, nil, true
}
