package mq

// VideoEvent 视频生命周期事件
type VideoEvent struct {
	Type      string `json:"type"` // "video_published" or "video_deleted"
	VideoID   int64  `json:"video_id"`
	UserID    int64  `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}

const (
	VideoEventPublished = "video_published"
	VideoEventDeleted   = "video_deleted"

	VideoEventExchange = "video_events"
	VideoEventQueue    = "video_event_queue"
)
