package handlers

import (
	"context"

	"VidTube.com/cmd/playlist/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathId(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := service.NewPlaylistService(ctx).GetPlaylistDetail(playlistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathId(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(userId, playlistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathId(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(userId, playlistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := pathId(c, "userId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).ListPlaylistsByUser(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathId(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
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
	if err := service.NewPlaylistService(ctx).AddVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathId(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
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
	if err := service.NewPlaylistService(ctx).RemoveVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
