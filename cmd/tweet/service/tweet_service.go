package service

import (
	"context"
	"time"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/cmd/tweet/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

// TweetView 推文列表条目，附带点赞数
type TweetView struct {
	*model.Tweet
	LikeCount int64 `json:"like_count"`
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("tweet content is required")
	}
	now := time.Now().Format(constants.TimeFormat)
	tweet := &model.Tweet{
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	return tweet, nil
}

func (s *TweetService) UpdateTweet(userId, tweetId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("tweet content is required")
	}
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetTweet failed")
	}
	if tweet == nil {
		return nil, errno.NotFoundErr.WithMessage("tweet not found")
	}
	if tweet.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("only the tweet owner can edit it")
	}

	if err := db.UpdateTweetContent(s.ctx, tweetId, content, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateTweetContent failed")
	}
	tweet.Content = content
	return tweet, nil
}

// DeleteTweet removes the tweet and its likes after the ownership gate.
func (s *TweetService) DeleteTweet(userId, tweetId int64) error {
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetTweet failed")
	}
	if tweet == nil {
		return errno.NotFoundErr.WithMessage("tweet not found")
	}
	if tweet.UserId != userId {
		return errno.PermissionErr.WithMessage("only the tweet owner can delete it")
	}

	if err := interactiondb.DeleteLikesByTarget(s.ctx, model.LikeTarget{Type: constants.LikeTargetTweet, Id: tweetId}); err != nil {
		return errors.WithMessage(err, "dao.DeleteLikesByTarget failed")
	}
	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		return errors.WithMessage(err, "dao.DeleteTweet failed")
	}
	return nil
}

func (s *TweetService) ListTweetsByUser(userId int64) ([]*TweetView, error) {
	tweets, err := db.ListTweetsByUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListTweetsByUser failed")
	}
	views := make([]*TweetView, 0, len(tweets))
	for _, t := range tweets {
		likeCount, err := interactiondb.GetLikeCount(s.ctx, model.LikeTarget{Type: constants.LikeTargetTweet, Id: t.TweetId})
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetLikeCount failed")
		}
		views = append(views, &TweetView{Tweet: t, LikeCount: likeCount})
	}
	return views, nil
}
