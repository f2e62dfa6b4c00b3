package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/relation/infras/redis"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription creates the subscription when absent and removes it when
// present. Returns the resulting subscribed state.
func (s *RelationService) ToggleSubscription(subscriberId, channelId int64) (bool, error) {
	if subscriberId == channelId {
		return false, errno.ParamErr.WithMessage("cannot subscribe to yourself")
	}

	exist, err := userdb.CheckUserExistById(s.ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.CheckUserExistById failed")
	}
	if !exist {
		return false, errno.NotFoundErr.WithMessage("channel not found")
	}

	// The check-then-flip pair below is not atomic; the mutex narrows the
	// window where two requests from the same subscriber both observe the
	// same state.
	mutex := redis.SubscribeMutex(subscriberId, channelId)
	if err := mutex.Lock(); err != nil {
		hlog.Warnf("subscribe mutex lock failed: %v", err)
	} else {
		defer mutex.Unlock()
	}

	subscribed, err := db.IsSubscriptionExist(s.ctx, subscriberId, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.IsSubscriptionExist failed")
	}
	if subscribed {
		if err := db.DeleteSubscription(s.ctx, subscriberId, channelId); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteSubscription failed")
		}
		return false, nil
	}
	if err := db.CreateSubscription(s.ctx, subscriberId, channelId); err != nil {
		return false, errors.WithMessage(err, "dao.CreateSubscription failed")
	}
	return true, nil
}

// GetChannelSubscribers resolves the channel's subscribers to public users.
func (s *RelationService) GetChannelSubscribers(channelId int64) ([]*model.User, error) {
	ids, err := db.GetSubscriberList(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscriberList failed")
	}
	return s.resolveUsers(ids)
}

// GetSubscribedChannels resolves the channels the user subscribes to.
func (s *RelationService) GetSubscribedChannels(subscriberId int64) ([]*model.User, error) {
	ids, err := db.GetSubscribedChannelList(s.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscribedChannelList failed")
	}
	return s.resolveUsers(ids)
}

func (s *RelationService) resolveUsers(ids []int64) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	byId, err := userdb.GetUsersByIds(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byId[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}
