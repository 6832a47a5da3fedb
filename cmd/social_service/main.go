package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	memberrepo "gamer_social_service/internal/member/repository"
	"gamer_social_service/internal/social/app"
	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/internal/social/router"
	"gamer_social_service/pkg/config"
	"gamer_social_service/pkg/database"
	"gamer_social_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.SocialService, config.EnvConfig.SocialServiceLogPath)
	cfg := config.LoadConfig[config.Social](config.EnvConfig.SocialService, config.EnvConfig.SocialServiceYAMLPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. 建立 PostgreSQL 連線 (gorm)
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	db, err := database.NewPGConnection(database.Connection{
		ConnectStr:    connStr,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to database after retries",
			zap.String("address", fmt.Sprintf("[%s]", connStr)),
			zap.Error(err),
		)
	}

	// member 資料同一個 postgres，好友列表要帶顯示名稱
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    connStr,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect member pool err : %v", err))
	}
	defer pool.Close()

	// 2. 建立 Redis 連線 (通知推播)
	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}

	// 3. 建立 Kafka Reader，消費 chat service 的跨服務事件
	kafkaReader, err := database.NewKafkaReaderWithRetry(database.KafkaConnection{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		GroupID:       cfg.Kafka.GroupID,
		RetryCount:    cfg.Kafka.RetryCount,
		RetryInterval: time.Duration(cfg.Kafka.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect kafka err : %v", err))
	}
	defer kafkaReader.Close()

	// 4. 建立 RabbitMQ 連線 (客服單工作佇列)
	rabbitConnStr := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port)
	rabbitConn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    rabbitConnStr,
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: time.Duration(cfg.RabbitMQ.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect rabbitmq err : %v", err))
	}
	defer rabbitConn.Close()

	rabbitChannel, err := database.GetRabbitMQChannelWithRetry(rabbitConn, cfg.RabbitMQ.RetryCount, time.Duration(cfg.RabbitMQ.RetryInterval)*time.Second)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("get rabbitmq channel err : %v", err))
	}
	defer rabbitChannel.Close()

	if _, err := rabbitChannel.QueueDeclare(
		domain.TicketQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		logger.Log.Fatal(fmt.Sprintf("declare queue err : %v", err))
	}

	// 5. 初始化 Repository
	friendRepo := repository.NewFriendRepo(db)
	zepRepo := repository.NewZepChatRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	ticketRepo := repository.NewTicketRepo(db)
	memberRepo := memberrepo.NewMemberRepository(pool)
	publisher := repository.NewRedisNotifyPublisher(redisClient)
	consumer := repository.NewKafkaEventConsumer(kafkaReader)

	for _, migrate := range []func() error{
		friendRepo.AutoMigrate,
		zepRepo.AutoMigrate,
		notifRepo.AutoMigrate,
		ticketRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Log.Fatal(fmt.Sprintf("auto migrate err : %v", err))
		}
	}

	// 6. 初始化 UseCases
	friendUC := app.NewFriendUseCase(friendRepo, notifRepo, memberRepo, publisher)
	zepChatUC := app.NewZepChatUseCase(zepRepo, notifRepo, publisher)
	notificationUC := app.NewNotificationUseCase(notifRepo, friendUC, consumer, publisher)
	ticketUC := app.NewTicketUseCase(ticketRepo, database.NewRabbitRepository(rabbitChannel))

	// 7. 背景消費者：kafka 事件與客服單佇列
	go notificationUC.StartConsumer(ctx)

	worker := app.NewTicketWorker(rabbitChannel, ticketRepo, notifRepo, publisher, domain.TicketQueueName)
	go worker.StartConsumer(ctx)

	// 8. 啟動 Fiber
	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.SocialServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	// 注册路由
	router.RegisterRoutes(r,
		app.NewFriendHandler(friendUC),
		app.NewZepChatHandler(zepChatUC),
		app.NewNotificationHandler(notificationUC),
		app.NewTicketHandler(ticketUC),
	)

	// Listen
	port := ":" + cfg.Port
	log.Printf("Social Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
