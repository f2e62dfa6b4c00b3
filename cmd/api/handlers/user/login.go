package handlers

import (
	"context"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// LoginUser authenticates through both token middlewares and returns the
// pair alongside the user, on top of the cookies the middlewares set.
func LoginUser(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	accessToken := c.GetString("Access-Token")
	if accessToken == "" {
		// the middleware already wrote the 401 envelope
		return
	}
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)
	refreshToken := c.GetString("Refresh-Token")
	if refreshToken == "" {
		return
	}

	user, _ := c.Get("login_user")
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func LogoutUser(ctx context.Context, c *app.RequestContext) {
	if err := jwt.RevokeTokens(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// RefreshAccessToken exchanges a valid refresh token for a new token pair.
// The presented refresh token stops working once the rotation lands in redis.
func RefreshAccessToken(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsRefreshTokenAvailable(ctx, c) {
		SendResponse(c, errno.TokenInvalid, nil)
		return
	}
	jwt.GenerateAccessToken(ctx, c)
	jwt.RotateRefreshToken(ctx, c)
	accessToken := c.GetString("Access-Token")
	refreshToken := c.GetString("Refresh-Token")
	if accessToken == "" {
		SendResponse(c, errno.ServiceErr, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
