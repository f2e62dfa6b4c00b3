package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"VidTube.com/cmd/video/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	videos, total, err := service.NewVideoListService(ctx).ListVideos(&service.ListVideosParams{
		UserId:   param.UserId,
		Keyword:  param.Query,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"videos": videos,
		"total":  total,
	})
}

// UploadVideo spools the multipart video to a temp file so ffmpeg can probe
// it, then hands everything to the service.
func UploadVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param UploadVideoParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}
	videoPath := filepath.Join(os.TempDir(), uuid.NewString()+".mp4")
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer func() {
		if err := os.Remove(videoPath); err != nil {
			hlog.Warnf("remove temp video failed: %v", err)
		}
	}()

	req := &service.UploadVideoParams{
		UserId:      userId,
		Title:       param.Title,
		Description: param.Description,
		VideoPath:   videoPath,
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		thumbPath, contentType, err := saveTempFile(c, fh)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer os.Remove(thumbPath)
		req.ThumbnailPath, req.ThumbnailContentType = thumbPath, contentType
	}

	video, err := service.NewVideoUploadService(ctx).UploadVideo(req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func GetVideoById(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathId(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	viewerId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := service.NewVideoDetailService(ctx).GetVideoDetail(videoId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateVideoParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	req := &service.UpdateVideoParams{
		UserId:      userId,
		VideoId:     videoId,
		Title:       param.Title,
		Description: param.Description,
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		data, contentType, err := readFormFile(fh)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		req.Thumbnail, req.ThumbnailContentType = data, contentType
	}
	video, err := service.NewVideoUpdateService(ctx).UpdateVideo(req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewVideoDeleteService(ctx).DeleteVideo(userId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
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
	video, err := service.NewTogglePublishService(ctx).TogglePublishStatus(userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func saveTempFile(c *app.RequestContext, fh *multipart.FileHeader) (string, string, error) {
	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return "", "", err
	}
	return path, fh.Header.Get("Content-Type"), nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
