package model

type Playlist struct {
	PlaylistId  int64  `gorm:"column:playlist_id" json:"playlist_id"`
	UserId      int64  `gorm:"column:user_id" json:"user_id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string `gorm:"column:updated_at" json:"updated_at"`
}

func (p *Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo (playlist_id, video_id) 唯一，集合语义
type PlaylistVideo struct {
	PlaylistVideoId int64  `gorm:"column:playlist_video_id" json:"playlist_video_id"`
	PlaylistId      int64  `gorm:"column:playlist_id" json:"playlist_id"`
	VideoId         int64  `gorm:"column:video_id" json:"video_id"`
	CreatedAt       string `gorm:"column:created_at" json:"created_at"`
}

func (p *PlaylistVideo) TableName() string {
	return "playlist_videos"
}
