package model

// Subscription subscriber 关注 channel，两端都是用户
// (subscriber_id, channel_id) 唯一，且 subscriber != channel
type Subscription struct {
	SubscriptionId int64  `gorm:"column:subscription_id" json:"subscription_id"`
	SubscriberId   int64  `gorm:"column:subscriber_id" json:"subscriber_id"`
	ChannelId      int64  `gorm:"column:channel_id" json:"channel_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (s *Subscription) TableName() string {
	return "subscriptions"
}
