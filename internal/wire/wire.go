package wire

import (
	"Parley/internal/api"
	"Parley/internal/api/config"
	"Parley/internal/api/handler"
	"Parley/internal/job"
	"Parley/internal/pkg/cron"
	"Parley/internal/pkg/kafka"
	"Parley/internal/pkg/mongo"
	"Parley/internal/pkg/realtime"
	"Parley/internal/pkg/redis"
	"Parley/internal/repository"
	"Parley/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router          *gin.Engine
	DB              *gorm.DB
	Hub             *realtime.Hub
	IMService       service.IMService
	IdentityService service.IdentityService
	Bridge          *realtime.Bridge // 仅 redis 投递模式
	KafkaManager    *kafka.ConsumerManager
	CronMgr         *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	convRepo := repository.NewConversationRepo(db)
	userRepo := repository.NewUserRepo(db)
	messageRepo := mongo.NewMessageRepo(mongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := messageRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure message indexes: %w", err)
	}

	hub := realtime.NewHub()

	var (
		dispatcher realtime.Dispatcher
		bridge     *realtime.Bridge
	)
	switch cfg.IM.DeliveryMode {
	case config.DeliveryModeRedis:
		dispatcher = realtime.NewRedisDispatcher(redis.GetRdbClient(), hub)
		bridge = realtime.NewBridge(redis.GetRdbClient(), hub)
	case config.DeliveryModeLocal, "":
		dispatcher = realtime.NewLocalDispatcher(hub)
	default:
		return nil, fmt.Errorf("unknown im delivery mode %q", cfg.IM.DeliveryMode)
	}
	log.Info("IM delivery mode", "mode", cfg.IM.DeliveryMode)

	identityService := service.NewIdentityService(userRepo, service.IdentityOptions{Invalidated: cfg.Kafka.Enable})
	imService := service.NewIMService(convRepo, messageRepo, identityService, dispatcher, service.IMOptions{
		PushTimeout:      cfg.IM.PushTimeout(),
		DefaultPageSize:  cfg.IM.DefaultPageSize,
		MaxPageSize:      cfg.IM.MaxPageSize,
		MaxContentLength: cfg.IM.MaxContentLength,
	})

	handlers := &api.HandlersGroup{
		IMHandler: handler.NewIMHandler(imService, hub),
		WsHandler: handler.NewWsHandler(imService, hub, cfg.IM.SendBuffer),
	}
	router := api.SetupRouter(handlers, cfg.Logstash)

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		var err error
		kafkaMgr, err = kafka.NewConsumerManager(cfg, identityService)
		if err != nil {
			return nil, err
		}
	}

	cronMgr := cron.NewCronManager(job.NewPresenceSweepJob(hub, realtime.StaleAfter), cfg.IM.SweepSpec)

	return &ApplicationContainer{
		Router:          router,
		DB:              db,
		Hub:             hub,
		IMService:       imService,
		IdentityService: identityService,
		Bridge:          bridge,
		KafkaManager:    kafkaMgr,
		CronMgr:         cronMgr,
	}, nil
}
