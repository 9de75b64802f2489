package main

import (
	"context"
	"fmt"

	commenthandlers "ReelHub.com/cmd/api/handlers/comment"
	musichandlers "ReelHub.com/cmd/api/handlers/music"
	reelhandlers "ReelHub.com/cmd/api/handlers/reel"
	userhandlers "ReelHub.com/cmd/api/handlers/user"
	interactiondb "ReelHub.com/cmd/interaction/dal/db"
	musicdb "ReelHub.com/cmd/music/dal/db"
	reeldb "ReelHub.com/cmd/reel/dal/db"
	reelredis "ReelHub.com/cmd/reel/infras/redis"
	userdb "ReelHub.com/cmd/user/dal/db"
	userservice "ReelHub.com/cmd/user/service"
	"ReelHub.com/cmd/model"
	"ReelHub.com/config"
	"ReelHub.com/pkg/constants"
	"ReelHub.com/pkg/database"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/jwt"
	"ReelHub.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func rabbitURL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

// initRecorder connects the action event producer and its consumer. When
// the broker is down the API still serves; events only reach the local log.
func initRecorder() mq.Recorder {
	producer, err := mq.NewProducer(rabbitURL())
	if err != nil {
		logrus.Warnf("rabbitmq unavailable, action events stay local: %v", err)
		return mq.NopRecorder{}
	}

	consumer, err := mq.NewConsumer(rabbitURL(), database.Collection(constants.ActionLogCollection))
	if err != nil {
		logrus.Warnf("action log consumer init failed: %v", err)
	} else if err := consumer.Start(context.Background()); err != nil {
		logrus.Warnf("action log consumer start failed: %v", err)
	}
	return producer
}

func main() {
	config.Init()
	database.Init()
	reelredis.Load()
	recorder := initRecorder()

	userRepo := userdb.NewUserRepo()
	reelRepo := reeldb.NewReelRepo()
	commentRepo := interactiondb.NewCommentRepo()
	musicRepo := musicdb.NewMusicRepo()
	reelCache := reelredis.NewCache()

	userhandlers.Init(userRepo, recorder)
	reelhandlers.Init(reelRepo, reelCache, recorder, reelRepo, commentRepo)
	commenthandlers.Init(commentRepo, reelRepo, recorder)
	musichandlers.Init(musicRepo)

	jwt.Init(func(ctx context.Context, email, password string) (*model.User, error) {
		return userservice.NewLoginUserService(ctx, userRepo, recorder).LoginUser(email, password)
	})

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "Server error",
			})
		})))

	register(r)

	r.Spin()
}
