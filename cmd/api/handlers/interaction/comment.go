package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func AddComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathId(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param CommentContentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).AddComment(userId, videoId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := pathId(c, "commentId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param CommentContentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(userId, commentId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := pathId(c, "commentId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(userId, commentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathId(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param ListCommentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	comments, total, err := service.NewCommentService(ctx).ListComments(videoId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"comments": comments,
		"total":    total,
	})
}
