package handlers

import (
	"context"
	"strconv"

	"VidTube.com/cmd/tweet/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode == errno.SuccessCode,
	})
}

func pathId(c *app.RequestContext, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage("invalid " + name)
	}
	return id, nil
}

type TweetContentParam struct {
	Content string `form:"content" json:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param TweetContentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := pathId(c, "tweetId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param TweetContentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(userId, tweetId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := pathId(c, "tweetId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId, err := jwt.GetCurrentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(userId, tweetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := pathId(c, "userId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	tweets, err := service.NewTweetService(ctx).ListTweetsByUser(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweets)
}
