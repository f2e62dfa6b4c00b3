package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
)

func CreateSubscription(ctx context.Context, subscriberId, channelId int64) error {
	if err := DB.WithContext(ctx).Create(&model.Subscription{
		SubscriberId: subscriberId,
		ChannelId:    channelId,
		CreatedAt:    time.Now().Format(constants.TimeFormat),
	}).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed,err:%v", err)
	}
	return nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) error {
	if err := DB.WithContext(ctx).Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteSubscription failed,err:%v", err)
	}
	return nil
}

func IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscriptionExist failed,err:%v", err)
	}
	return count > 0, nil
}

// GetSubscriberList returns the ids of users subscribed to the channel.
func GetSubscriberList(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Select("subscriber_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriberList failed,err:%v", err)
	}
	return list, nil
}

// GetSubscribedChannelList returns the ids of channels the user subscribes to.
func GetSubscribedChannelList(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Select("channel_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribedChannelList failed,err:%v", err)
	}
	return list, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "GetSubscriberCount failed,err:%v", err)
	}
	return count, nil
}

func GetSubscribedChannelCount(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "GetSubscribedChannelCount failed,err:%v", err)
	}
	return count, nil
}
