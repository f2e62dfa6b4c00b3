package jwt

import (
	"context"
	"encoding/json"
	"time"

	"VidTube.com/cmd/model"
	userredis "VidTube.com/cmd/user/infras/redis"
	"VidTube.com/cmd/user/service"
	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

const (
	IdentityKey = "user_id"

	AccessTokenExpireTime  = time.Hour
	RefreshTokenExpireTime = 7 * 24 * time.Hour
)

type loginParam struct {
	UserName string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// AccessTokenJwtInit builds the short-lived token middleware. The token
// travels in the Authorization header or the access_token cookie.
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       AccessTokenExpireTime,
		MaxRefresh:    AccessTokenExpireTime,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization, cookie: access_token",
		TokenHeadName: "Bearer",
		Authenticator: authenticate,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{IdentityKey: user.UserId}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: identityHandler,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Access-Token", token)
			c.SetCookie("access_token", token, int(AccessTokenExpireTime.Seconds()),
				"/", "", protocol.CookieSameSiteLaxMode, false, true)
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		hlog.Fatal(errors.Wrap(err, "access token middleware init failed"))
	}
}

// RefreshTokenJwtInit builds the long-lived token middleware. The issued
// token is also written to redis so logout can revoke it server-side.
func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:       RefreshTokenExpireTime,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Refresh-Token, cookie: refresh_token",
		TokenHeadName: "Bearer",
		Authenticator: authenticate,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{IdentityKey: user.UserId}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: identityHandler,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Refresh-Token", token)
			c.SetCookie("refresh_token", token, int(RefreshTokenExpireTime.Seconds()),
				"/", "", protocol.CookieSameSiteLaxMode, false, true)
			if userId, err := GetCurrentUserId(ctx, c); err == nil {
				if err := userredis.SetRefreshToken(ctx, userId, token, RefreshTokenExpireTime); err != nil {
					hlog.Warn("store refresh token failed : ", err)
				}
			}
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		hlog.Fatal(errors.Wrap(err, "refresh token middleware init failed"))
	}
}

func authenticate(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	var login loginParam
	if err := c.Bind(&login); err != nil {
		return nil, errno.ErrBind
	}
	user, err, ok := service.NewLoginUserService(ctx).LoginUser(login.UserName, login.Password)
	if err != nil || !ok {
		return nil, errno.AuthErr
	}
	c.Set(IdentityKey, user.UserId)
	c.Set("login_user", user)
	return user, nil
}

func identityHandler(ctx context.Context, c *app.RequestContext) interface{} {
	claims := jwt.ExtractClaims(ctx, c)
	return claimUserId(claims)
}

func unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	c.JSON(int(errno.AuthErrCode), map[string]interface{}{
		"statusCode": errno.AuthErrCode,
		"data":       nil,
		"message":    message,
		"success":    false,
	})
}

func claimUserId(claims jwt.MapClaims) int64 {
	switch v := claims[IdentityKey].(type) {
	case float64:
		return int64(v)
	case json.Number:
		id, _ := v.Int64()
		return id
	case int64:
		return v
	default:
		return 0
	}
}

// GetCurrentUserId resolves the caller's identity set by the auth middleware.
func GetCurrentUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	if v, ok := c.Get(IdentityKey); ok {
		if id, ok := v.(int64); ok && id > 0 {
			return id, nil
		}
	}
	claims := jwt.ExtractClaims(ctx, c)
	if id := claimUserId(claims); id > 0 {
		return id, nil
	}
	return 0, errno.TokenInvalid
}

// IsAccessTokenAvailable parses and validates the access token in place,
// stashing the claims so later handlers can read the identity.
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, AccessTokenJwtMiddleware)
}

// IsRefreshTokenAvailable additionally checks the token against the copy
// stored in redis at login, so revoked tokens stop working immediately.
func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	if !isTokenAvailable(ctx, c, RefreshTokenJwtMiddleware) {
		return false
	}
	userId, err := GetCurrentUserId(ctx, c)
	if err != nil {
		return false
	}
	stored, err := userredis.GetRefreshToken(ctx, userId)
	if err != nil || stored == "" {
		return false
	}
	presented := getRawToken(c)
	return presented != "" && presented == stored
}

func isTokenAvailable(ctx context.Context, c *app.RequestContext, mw *jwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	switch v := claims["exp"].(type) {
	case float64:
		if int64(v) < mw.TimeFunc().Unix() {
			return false
		}
	case json.Number:
		n, err := v.Int64()
		if err != nil || n < mw.TimeFunc().Unix() {
			return false
		}
	default:
		return false
	}
	c.Set("JWT_PAYLOAD", claims)
	c.Set(IdentityKey, claimUserId(claims))
	return true
}

// getRawToken pulls the refresh token string the way the middleware does,
// header first then cookie.
func getRawToken(c *app.RequestContext) string {
	if h := string(c.GetHeader("Refresh-Token")); h != "" {
		if len(h) > 7 && h[:7] == "Bearer " {
			return h[7:]
		}
		return h
	}
	return string(c.Cookie("refresh_token"))
}

// GenerateAccessToken mints a fresh access token for a caller whose access
// token expired but whose refresh token is still honoured.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	userId, err := GetCurrentUserId(ctx, c)
	if err != nil {
		return
	}
	tokenString, _, err := AccessTokenJwtMiddleware.TokenGenerator(&model.User{UserId: userId})
	if err != nil {
		hlog.Warn("generate access token failed : ", err)
		return
	}
	c.Set("Access-Token", tokenString)
	c.Header("New-Access-Token", tokenString)
	c.SetCookie("access_token", tokenString, int(AccessTokenExpireTime.Seconds()),
		"/", "", protocol.CookieSameSiteLaxMode, false, true)
}

// RotateRefreshToken issues a replacement refresh token and swaps the redis
// copy, invalidating the one just presented.
func RotateRefreshToken(ctx context.Context, c *app.RequestContext) {
	userId, err := GetCurrentUserId(ctx, c)
	if err != nil {
		return
	}
	tokenString, _, err := RefreshTokenJwtMiddleware.TokenGenerator(&model.User{UserId: userId})
	if err != nil {
		hlog.Warn("rotate refresh token failed : ", err)
		return
	}
	if err := userredis.SetRefreshToken(ctx, userId, tokenString, RefreshTokenExpireTime); err != nil {
		hlog.Warn("store rotated refresh token failed : ", err)
		return
	}
	c.Set("Refresh-Token", tokenString)
	c.SetCookie("refresh_token", tokenString, int(RefreshTokenExpireTime.Seconds()),
		"/", "", protocol.CookieSameSiteLaxMode, false, true)
}

// RevokeTokens drops the server-side refresh token and expires both cookies.
func RevokeTokens(ctx context.Context, c *app.RequestContext) error {
	userId, err := GetCurrentUserId(ctx, c)
	if err != nil {
		return err
	}
	if err := userredis.DelRefreshToken(ctx, userId); err != nil {
		return errno.RedisErr
	}
	c.SetCookie("access_token", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	return nil
}
