package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func RegisterUser(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	req := &service.CreateUserParams{
		UserName: param.UserName,
		FullName: param.FullName,
		Email:    param.Email,
		Password: param.Password,
	}
	if fh, err := c.FormFile("avatar"); err == nil {
		data, contentType, err := readFormFile(fh)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		req.Avatar, req.AvatarContentType = data, contentType
	}
	if fh, err := c.FormFile("coverImage"); err == nil {
		data, contentType, err := readFormFile(fh)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		req.Cover, req.CoverContentType = data, contentType
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
