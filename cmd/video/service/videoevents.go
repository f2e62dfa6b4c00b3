package service

import (
	"context"

	"VidTube.com/cmd/video/infras/es"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VideoEventSyncer consumes video lifecycle events and keeps the search
// index in step, so a delete that raced a slow index write still converges.
type VideoEventSyncer struct{}

func (VideoEventSyncer) HandleVideoEvent(ctx context.Context, event *mq.VideoEvent) error {
	switch event.Type {
	case mq.VideoEventDeleted:
		if !es.Enabled() {
			return nil
		}
		return es.DeleteVideo(ctx, event.VideoID)
	case mq.VideoEventPublished:
		hlog.Infof("video %d published by user %d", event.VideoID, event.UserID)
	}
	return nil
}
