package model

// User 公开的用户信息，不携带密码
type User struct {
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	UserName  string `gorm:"column:user_name" json:"user_name"`
	FullName  string `gorm:"column:full_name" json:"full_name"`
	Email     string `gorm:"column:email" json:"email"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar_url"`
	CoverUrl  string `gorm:"column:cover_url" json:"cover_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// WatchHistory 用户观看历史，(user_id, video_id) 唯一，天然去重
type WatchHistory struct {
	WatchHistoryId int64  `gorm:"column:watch_history_id" json:"watch_history_id"`
	UserId         int64  `gorm:"column:user_id" json:"user_id"`
	VideoId        int64  `gorm:"column:video_id" json:"video_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (w *WatchHistory) TableName() string {
	return "watch_histories"
}
