package model

import "github.com/pkg/errors"

type Comment struct {
	CommentId int64  `gorm:"column:comment_id" json:"comment_id"`
	VideoId   int64  `gorm:"column:video_id" json:"video_id"`
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (c *Comment) TableName() string {
	return "comments"
}

// LikeTarget 点赞目标，三选一的标签变体：video / comment / tweet
type LikeTarget struct {
	Type string `json:"type"`
	Id   int64  `json:"id"`
}

func (t LikeTarget) Validate() error {
	switch t.Type {
	case "video", "comment", "tweet":
	default:
		return errors.Errorf("invalid like target type: %s", t.Type)
	}
	if t.Id <= 0 {
		return errors.New("invalid like target id")
	}
	return nil
}

// Like 每条记录恰好指向一个目标，(user_id, target_type, target_id) 唯一
type Like struct {
	LikeId     int64  `gorm:"column:like_id" json:"like_id"`
	UserId     int64  `gorm:"column:user_id" json:"user_id"`
	TargetType string `gorm:"column:target_type" json:"target_type"`
	TargetId   int64  `gorm:"column:target_id" json:"target_id"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
}

func (l *Like) TableName() string {
	return "likes"
}

func (l *Like) Target() LikeTarget {
	return LikeTarget{Type: l.TargetType, Id: l.TargetId}
}
