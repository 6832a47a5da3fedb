package main

import (
	"gamer_social_service/internal/api/router"

	"github.com/gofiber/fiber/v2"
)

// 因拆分微服務。此程式用於init swagger
// swag init output ./cmd/api_gateway/docs
func main() {
	// 创建 Fiber 应用
	app := fiber.New()

	// 注册路由
	router.RegisterRoutes(app, "", "", "")
}
