package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "CreateTweet failed,err:%v", err)
	}
	return nil
}

// GetTweet returns nil when the tweet does not exist.
func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Count(&count).Find(&tweet).Error; err != nil {
		return nil, errors.Wrapf(err, "GetTweet failed,err:%v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return &tweet, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": updatedAt,
		}).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweetContent failed,err:%v", err)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTweet failed,err:%v", err)
	}
	return nil
}

func ListTweetsByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).Order("tweet_id DESC").Find(&tweets).Error; err != nil {
		return nil, errors.Wrapf(err, "ListTweetsByUser failed,err:%v", err)
	}
	return tweets, nil
}
