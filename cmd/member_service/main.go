package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gamer_social_service/internal/member/app"
	"gamer_social_service/internal/member/domain"
	"gamer_social_service/internal/member/repository"
	"gamer_social_service/internal/member/router"
	"gamer_social_service/pkg/config"
	"gamer_social_service/pkg/database"
	"gamer_social_service/pkg/logger"
	testtool "gamer_social_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.MemberService, config.EnvConfig.MemberServiceLogPath)
	cfg := config.LoadConfig[config.Member](config.EnvConfig.MemberService, config.EnvConfig.MemberServiceYAMLPath)

	testtool.StartPprof()

	// 1. 建立 PostgreSQL 連線
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pool, err := database.NewDatabaseConnection(database.Connection{
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
	defer pool.Close()

	// 2. 建立 Redis 連線 (session 存儲)
	masterName, sentinel := config.GetRedisSetting()
	redisRepo, err := database.NewRedisRepository[domain.MemberSession](masterName, sentinel, cfg.RedisMember.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}

	// 3. 建立 MinIO 連線 (頭像存儲)
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect minio err : %v", err))
	}

	// 4. 初始化 Repository 與 UseCase
	memberRepo := repository.NewMemberRepository(pool)
	avatarStore := repository.NewMinioAvatarStore(minioClient)
	memberUC := app.NewMemberUseCase(memberRepo, cfg.SessionTTL, redisRepo, avatarStore)

	// 5. 啟動 Fiber
	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.MemberServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	// 注册路由
	router.RegisterRoutes(r, app.NewMemberHandler(memberUC))

	// Listen
	port := ":" + cfg.Port
	log.Printf("Member Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
