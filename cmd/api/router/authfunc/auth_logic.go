package authfunc

import (
	"context"

	handlers "VidTube.com/cmd/api/handlers/user"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc accepts a live access token, or falls back to the
// refresh token and mints a new access token on the way through.
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.TokenInvalid, nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
