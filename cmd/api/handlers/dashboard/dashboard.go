package handlers

import (
	"context"

	"VidTube.com/cmd/dashboard/service"
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

type ChannelVideosParam struct {
	PageNum  int64 `query:"page"`
	PageSize int64 `query:"limit"`
}

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewDashboardService(ctx).GetChannelStats(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param ChannelVideosParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	if param.PageNum <= 0 {
		param.PageNum = 1
	}
	if param.PageSize <= 0 {
		param.PageSize = 10
	}
	videos, total, err := service.NewDashboardService(ctx).GetChannelVideos(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"videos": videos,
		"total":  total,
	})
}
