package handlers

import (
	"context"
	"strconv"

	"VidTube.com/cmd/relation/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode == errno.SuccessCode,
	})
}

func pathId(c *app.RequestContext, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage("invalid " + name)
	}
	return id, nil
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := pathId(c, "channelId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribed, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := pathId(c, "channelId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	users, err := service.NewRelationService(ctx).GetChannelSubscribers(channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, users)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := pathId(c, "subscriberId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	channels, err := service.NewRelationService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channels)
}
