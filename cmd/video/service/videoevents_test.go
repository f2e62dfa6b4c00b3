package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/mq"
)

// Without a configured Elasticsearch client the syncer must treat events as
// no-ops rather than fail them back onto the queue.
func TestVideoEventSyncerWithoutSearchIndex(t *testing.T) {
	syncer := VideoEventSyncer{}
	ctx := context.Background()

	deleted := &mq.VideoEvent{Type: mq.VideoEventDeleted, VideoID: 1, UserID: 2, EventID: "e1"}
	if err := syncer.HandleVideoEvent(ctx, deleted); err != nil {
		t.Errorf("deleted event should be a no-op, got %v", err)
	}

	published := &mq.VideoEvent{Type: mq.VideoEventPublished, VideoID: 1, UserID: 2, EventID: "e2"}
	if err := syncer.HandleVideoEvent(ctx, published); err != nil {
		t.Errorf("published event should only log, got %v", err)
	}

	unknown := &mq.VideoEvent{Type: "video_transcoded", VideoID: 1, EventID: "e3"}
	if err := syncer.HandleVideoEvent(ctx, unknown); err != nil {
		t.Errorf("unknown event types are ignored, got %v", err)
	}
}
