package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	userdb "VidTube.com/cmd/user/dal/db"
	userredis "VidTube.com/cmd/user/infras/redis"
	"VidTube.com/config"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int64           `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func newLoginEngine(t *testing.T) *route.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := gdb.AutoMigrate(&userdb.UserWithPassword{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	userdb.DB = gdb

	config.ConfigInfo.Jwt.AccessSecret = "access-secret"
	config.ConfigInfo.Jwt.RefreshSecret = "refresh-secret"
	// unreachable redis, the refresh token copy is skipped with a warning
	config.ConfigInfo.Redis.Addr = "127.0.0.1:1"
	userredis.Load()
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	engine := route.NewEngine(hertzconfig.NewOptions([]hertzconfig.Option{}))
	engine.POST("/api/v1/users/login", LoginUser)
	return engine
}

func performLogin(t *testing.T, engine *route.Engine, body string) (int, []byte) {
	t.Helper()
	w := ut.PerformRequest(engine, "POST", "/api/v1/users/login",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"})
	resp := w.Result()
	return resp.StatusCode(), resp.Body()
}

func TestLoginUser(t *testing.T) {
	engine := newLoginEngine(t)

	hashed, err := utils.Crypt("s3cret")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	now := "2025-01-02 03:04:05"
	if _, err := userdb.CreateUser(context.Background(), &userdb.UserWithPassword{
		UserId: 1, UserName: "alice", Password: hashed, Email: "alice@example.com",
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	t.Run("BadCredentialsWriteOneEnvelope", func(t *testing.T) {
		status, body := performLogin(t, engine, `{"username":"alice","password":"wrong"}`)
		if status != int(errno.AuthErrCode) {
			t.Fatalf("unexpected status: %d", status)
		}
		var resp envelope
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("body is not a single json envelope: %v\n%s", err, body)
		}
		if resp.Success {
			t.Fatal("expected a failed envelope")
		}
	})

	t.Run("ValidCredentialsReturnTokenPair", func(t *testing.T) {
		status, body := performLogin(t, engine, `{"username":"alice","password":"s3cret"}`)
		if status != int(errno.SuccessCode) {
			t.Fatalf("unexpected status: %d\n%s", status, body)
		}
		var resp envelope
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("decode envelope failed: %v", err)
		}
		var data struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode data failed: %v", err)
		}
		if data.AccessToken == "" || data.RefreshToken == "" {
			t.Fatalf("missing tokens: %+v", data)
		}
	})
}
