package es

import (
	"context"
	"encoding/json"
	"strconv"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

const videoIndex = "videos"

const videoMapping = `{
	"mappings": {
		"properties": {
			"video_id":    {"type": "long"},
			"user_id":     {"type": "long"},
			"title":       {"type": "text"},
			"description": {"type": "text"},
			"is_published":{"type": "boolean"}
		}
	}
}`

var client *elastic.Client

// Init connects to Elasticsearch. A missing address is not an error: search
// falls back to MySQL LIKE queries when ES is not wired.
func Init() error {
	addr := config.ConfigInfo.Elastic.Addr
	if addr == "" {
		hlog.Warn("elastic addr not configured, keyword search falls back to MySQL")
		return nil
	}

	var err error
	client, err = elastic.NewClient(
		elastic.SetURL(addr),
		elastic.SetSniff(false),
	)
	if err != nil {
		return errors.WithMessage(err, "connect elastic failed")
	}

	exists, err := client.IndexExists(videoIndex).Do(context.Background())
	if err != nil {
		return errors.WithMessage(err, "check video index failed")
	}
	if !exists {
		if _, err := client.CreateIndex(videoIndex).BodyString(videoMapping).Do(context.Background()); err != nil {
			return errors.WithMessage(err, "create video index failed")
		}
	}
	hlog.Info("Connect Elasticsearch Success")
	return nil
}

func Enabled() bool {
	return client != nil
}

type videoDoc struct {
	VideoId     int64  `json:"video_id"`
	UserId      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
}

func IndexVideo(ctx context.Context, video *model.Video) error {
	if client == nil {
		return nil
	}
	doc := videoDoc{
		VideoId:     video.VideoId,
		UserId:      video.UserId,
		Title:       video.Title,
		Description: video.Description,
		IsPublished: video.IsPublished,
	}
	_, err := client.Index().Index(videoIndex).
		Id(strconv.FormatInt(video.VideoId, 10)).
		BodyJson(doc).Do(ctx)
	if err != nil {
		return errors.WithMessage(err, "index video failed")
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if client == nil {
		return nil
	}
	_, err := client.Delete().Index(videoIndex).
		Id(strconv.FormatInt(videoId, 10)).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

// SearchVideos returns matching published video ids, best match first.
func SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) ([]int64, int64, error) {
	query := elastic.NewBoolQuery().
		Must(elastic.NewMultiMatchQuery(keyword, "title", "description")).
		Filter(elastic.NewTermQuery("is_published", true))

	result, err := client.Search().Index(videoIndex).Query(query).
		From(int((pageNum - 1) * pageSize)).Size(int(pageSize)).
		Do(ctx)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "search videos failed")
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc videoDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		ids = append(ids, doc.VideoId)
	}
	return ids, result.TotalHits(), nil
}
