package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type CreateUserParams struct {
	UserName string
	FullName string
	Email    string
	Password string

	// optional multipart images, empty when not supplied
	Avatar           []byte
	AvatarContentType string
	Cover            []byte
	CoverContentType string
}

// CreateUser registers a new account. Image uploads happen before the row is
// written: a failed upload rejects the request, an orphaned object after a
// failed insert is not cleaned up.
func (s *CreateUserService) CreateUser(req *CreateUserParams) (*model.User, error) {
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("username, email and password are required")
	}

	exist, err := db.CheckUserExistByNameOrEmail(s.ctx, req.UserName, req.Email)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUserExist failed")
	}
	if exist {
		return nil, errno.ParamErr.WithMessage("username or email already registered")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "hash password failed")
	}

	var avatarUrl, coverUrl string
	if len(req.Avatar) > 0 {
		avatarUrl, err = oss.UploadImage(s.ctx, req.Avatar, "avatar/"+uuid.NewString(), req.AvatarContentType)
		if err != nil {
			return nil, errno.OssErr.WithMessage(err.Error())
		}
	}
	if len(req.Cover) > 0 {
		coverUrl, err = oss.UploadImage(s.ctx, req.Cover, "cover/"+uuid.NewString(), req.CoverContentType)
		if err != nil {
			return nil, errno.OssErr.WithMessage(err.Error())
		}
	}

	now := time.Now().Format(constants.TimeFormat)
	user, err := db.CreateUser(s.ctx, &db.UserWithPassword{
		UserName:  req.UserName,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashed,
		AvatarUrl: avatarUrl,
		CoverUrl:  coverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}

	hlog.Infof("user %d registered as %s", user.UserId, user.UserName)
	return user, nil
}
