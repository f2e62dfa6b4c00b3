package main

import (
	"context"
	"fmt"

	interactionredis "VidTube.com/cmd/interaction/infras/redis"
	relationredis "VidTube.com/cmd/relation/infras/redis"
	userredis "VidTube.com/cmd/user/infras/redis"

	interactiondal "VidTube.com/cmd/interaction/dal"
	playlistdal "VidTube.com/cmd/playlist/dal"
	relationdal "VidTube.com/cmd/relation/dal"
	tweetdal "VidTube.com/cmd/tweet/dal"
	userdal "VidTube.com/cmd/user/dal"
	videodal "VidTube.com/cmd/video/dal"

	"VidTube.com/cmd/api/router/middleware"
	"VidTube.com/cmd/video/infras/es"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	"VidTube.com/config/jaeger"
	"VidTube.com/config/pprof"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()

	userdal.Init()
	videodal.Init()
	interactiondal.Init()
	relationdal.Init()
	playlistdal.Init()
	tweetdal.Init()

	userredis.Load()
	relationredis.Load()
	interactionredis.Load()

	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("minio init failed: %v", err)
	}
	if err := es.Init(); err != nil {
		hlog.Warnf("elasticsearch init failed, falling back to mysql search: %v", err)
	}
	if err := middleware.InitSentinel(); err != nil {
		hlog.Fatalf("sentinel init failed: %v", err)
	}
}

func amqpURL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

func main() {
	Init()
	pprof.Load()

	closer := jaeger.InitJaeger(constants.ApiServiceName)
	defer closer.Close()

	producer, err := mq.NewProducer(amqpURL())
	if err != nil {
		hlog.Warnf("rabbitmq producer init failed, video events disabled: %v", err)
	} else {
		defer producer.Close()
		videoservice.SetProducer(producer)
	}

	consumerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer, err := mq.NewConsumer(amqpURL())
	if err != nil {
		hlog.Warnf("rabbitmq consumer init failed: %v", err)
	} else {
		defer consumer.Close()
		if err := consumer.ConsumeVideoEvents(consumerCtx, videoservice.VideoEventSyncer{}); err != nil {
			hlog.Warnf("consume video events failed: %v", err)
		}
	}

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	r.Use(middleware.RateLimit())

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"statusCode": errno.ServiceErrCode,
				"data":       nil,
				"message":    "internal server error",
				"success":    false,
			})
		})))

	register(r)

	r.Spin()
}
