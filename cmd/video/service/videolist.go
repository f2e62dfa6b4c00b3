package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/es"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

type ListVideosParams struct {
	UserId   int64 // optional owner filter
	Keyword  string
	PageNum  int64
	PageSize int64
}

// ListVideos pages published videos. A keyword goes through Elasticsearch
// when wired, otherwise a MySQL LIKE query; an owner filter without keyword
// is a plain indexed query.
func (s *VideoListService) ListVideos(req *ListVideosParams) ([]*model.Video, int64, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 || req.PageSize > constants.MaxPageSize {
		req.PageSize = constants.DefaultPageSize
	}

	if req.Keyword != "" {
		if es.Enabled() {
			ids, total, err := es.SearchVideos(s.ctx, req.Keyword, req.PageNum, req.PageSize)
			if err != nil {
				return nil, 0, errors.WithMessage(err, "es.SearchVideos failed")
			}
			if len(ids) == 0 {
				return []*model.Video{}, total, nil
			}
			byId, err := db.GetVideosByIds(s.ctx, ids)
			if err != nil {
				return nil, 0, errors.WithMessage(err, "dao.GetVideosByIds failed")
			}
			videos := make([]*model.Video, 0, len(ids))
			for _, id := range ids {
				if v, ok := byId[id]; ok {
					videos = append(videos, v)
				}
			}
			return videos, total, nil
		}
		return db.SearchVideos(s.ctx, req.Keyword, req.PageNum, req.PageSize)
	}

	if req.UserId > 0 {
		return db.ListVideosByUser(s.ctx, req.UserId, req.PageNum, req.PageSize, false)
	}
	return db.SearchVideos(s.ctx, "", req.PageNum, req.PageSize)
}
