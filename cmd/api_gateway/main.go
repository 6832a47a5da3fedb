package main

import (
	"fmt"
	"log"
	"os"

	_ "gamer_social_service/cmd/api_gateway/docs" // 引入生成的 Swagger 文档
	"gamer_social_service/internal/api/router"
	"gamer_social_service/pkg/config"
	"gamer_social_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayLogPath)
	cfg := config.LoadConfig[config.APIGateway](config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayYAMLPath)

	memberTarget := fmt.Sprintf("http://%s:%s", cfg.MemberService.Name, cfg.MemberService.Port)
	socialTarget := fmt.Sprintf("http://%s:%s", cfg.SocialService.Name, cfg.SocialService.Port)
	chatTarget := fmt.Sprintf("http://%s:%s", cfg.ChatService.Name, cfg.ChatService.Port)

	// 创建 Fiber 应用
	r := fiber.New()
	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.APIGatewayLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	// 注册路由
	router.RegisterRoutes(r, memberTarget, socialTarget, chatTarget)

	// 启动服务器
	if err := r.Listen(":" + cfg.Port); err != nil {
		// 执行清理操作
		cleanup()
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

func cleanup() {
	// 释放资源，例如关闭数据库连接、清理文件等
	log.Println("Performing cleanup tasks...")
}
