package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewGetUserInfoService(ctx).GetUserInfo(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var param ChangePasswordParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewChangePasswordService(ctx).ChangePassword(userId, param.OldPassword, param.NewPassword); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	var param UpdateAccountParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUpdateUserService(ctx).UpdateAccount(userId, param.FullName, param.Email)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}
	data, contentType, err := readFormFile(fh)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUpdateAvatarService(ctx).UpdateAvatar(userId, data, contentType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func UpdateCoverImage(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	fh, err := c.FormFile("coverImage")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("cover image file is required"), nil)
		return
	}
	data, contentType, err := readFormFile(fh)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUpdateCoverService(ctx).UpdateCover(userId, data, contentType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
