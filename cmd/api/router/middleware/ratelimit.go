package middleware

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

const apiResource = "vidtube-api"

// InitSentinel loads a single QPS rule over the whole API surface.
func InitSentinel() error {
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "sentinel init failed")
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               apiResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              1000,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		return errors.Wrap(err, "sentinel load rules failed")
	}
	return nil
}

func RateLimit() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blockErr := sentinel.Entry(apiResource, sentinel.WithTrafficType(base.Inbound))
		if blockErr != nil {
			hlog.Warnf("request blocked by rate limit: %v", blockErr)
			c.JSON(429, map[string]interface{}{
				"statusCode": 429,
				"data":       nil,
				"message":    "too many requests",
				"success":    false,
			})
			c.Abort()
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
