package service

import (
	"context"

	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type ChannelProfileService struct {
	ctx context.Context
}

func NewChannelProfileService(ctx context.Context) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx}
}

// ChannelProfile 频道主页视图：公开资料 + 订阅计数
type ChannelProfile struct {
	*model.User
	SubscriberCount        int64 `json:"subscriber_count"`
	SubscribedChannelCount int64 `json:"subscribed_channel_count"`
	IsSubscribed           bool  `json:"is_subscribed"`
}

// GetChannelProfile composes the channel page for the named user, with
// IsSubscribed computed for the calling viewer.
func (s *ChannelProfileService) GetChannelProfile(username string, viewerId int64) (*ChannelProfile, error) {
	if username == "" {
		return nil, errno.ParamErr.WithMessage("username is required")
	}

	user, err := db.GetUserByName(s.ctx, username)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByName failed")
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("channel does not exist")
	}

	subscriberCount, err := relationdb.GetSubscriberCount(s.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscriberCount failed")
	}
	subscribedCount, err := relationdb.GetSubscribedChannelCount(s.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscribedChannelCount failed")
	}
	isSubscribed, err := relationdb.IsSubscriptionExist(s.ctx, viewerId, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.IsSubscriptionExist failed")
	}

	return &ChannelProfile{
		User:                   user,
		SubscriberCount:        subscriberCount,
		SubscribedChannelCount: subscribedCount,
		IsSubscribed:           isSubscribed,
	}, nil
}
