package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/cmd/model"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeTargetVideo, "videoId")
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeTargetComment, "commentId")
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeTargetTweet, "tweetId")
}

func toggleLike(ctx context.Context, c *app.RequestContext, targetType, paramName string) {
	targetId, err := pathId(c, paramName)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleLike(userId, model.LikeTarget{Type: targetType, Id: targetId})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"liked": liked})
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewLikedVideosService(ctx).GetLikedVideos(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
