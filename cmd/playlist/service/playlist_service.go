package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/playlist/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// PlaylistVideoView 播放列表视频条目：视频 + 作者公开信息
type PlaylistVideoView struct {
	*model.Video
	Owner *model.User `json:"owner"`
}

// PlaylistDetail 播放列表详情视图
type PlaylistDetail struct {
	*model.Playlist
	Videos []*PlaylistVideoView `json:"videos"`
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if name == "" {
		return nil, errno.ParamErr.WithMessage("playlist name is required")
	}
	now := time.Now().Format(constants.TimeFormat)
	playlist := &model.Playlist{
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	return playlist, nil
}

// GetPlaylistDetail joins the playlist's videos and their owners.
func (s *PlaylistService) GetPlaylistDetail(playlistId int64) (*PlaylistDetail, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylist failed")
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}

	videoIds, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylistVideoIds failed")
	}
	detail := &PlaylistDetail{Playlist: playlist, Videos: []*PlaylistVideoView{}}
	if len(videoIds) == 0 {
		return detail, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := userdb.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	for _, id := range videoIds {
		video, ok := videos[id]
		if !ok {
			continue
		}
		detail.Videos = append(detail.Videos, &PlaylistVideoView{Video: video, Owner: owners[video.UserId]})
	}
	return detail, nil
}

func (s *PlaylistService) UpdatePlaylist(userId, playlistId int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.loadOwned(userId, playlistId)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = playlist.Name
	}
	if description == "" {
		description = playlist.Description
	}
	if err := db.UpdatePlaylistInfo(s.ctx, playlistId, name, description, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePlaylistInfo failed")
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(userId, playlistId int64) error {
	if _, err := s.loadOwned(userId, playlistId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "dao.DeletePlaylist failed")
	}
	return nil
}

func (s *PlaylistService) ListPlaylistsByUser(userId int64) ([]*model.Playlist, error) {
	playlists, err := db.ListPlaylistsByUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPlaylistsByUser failed")
	}
	return playlists, nil
}

// AddVideo enforces set semantics: adding a video twice is a BadRequest.
func (s *PlaylistService) AddVideo(userId, playlistId, videoId int64) error {
	if _, err := s.loadOwned(userId, playlistId); err != nil {
		return err
	}
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("video not found")
	}

	exists, err := db.IsVideoInPlaylist(s.ctx, playlistId, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.IsVideoInPlaylist failed")
	}
	if exists {
		return errno.ParamErr.WithMessage("video already in playlist")
	}
	if err := db.AddVideoToPlaylist(s.ctx, playlistId, videoId); err != nil {
		return errors.WithMessage(err, "dao.AddVideoToPlaylist failed")
	}
	return nil
}

func (s *PlaylistService) RemoveVideo(userId, playlistId, videoId int64) error {
	if _, err := s.loadOwned(userId, playlistId); err != nil {
		return err
	}
	if err := db.RemoveVideoFromPlaylist(s.ctx, playlistId, videoId); err != nil {
		return errors.WithMessage(err, "dao.RemoveVideoFromPlaylist failed")
	}
	return nil
}

func (s *PlaylistService) loadOwned(userId, playlistId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylist failed")
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	if playlist.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("only the playlist owner can modify it")
	}
	return playlist, nil
}
