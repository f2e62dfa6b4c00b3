package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetChannelProfile(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		SendResponse(c, errno.ParamErr.WithMessage("username is required"), nil)
		return
	}
	viewerId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	profile, err := service.NewChannelProfileService(ctx).GetChannelProfile(username, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

func GetWatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewWatchHistoryService(ctx).GetWatchHistory(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
