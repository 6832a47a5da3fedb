package router

import (
	"gamer_social_service/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 注册 gateway 的路由
// @title Gamer Social Service API
// @version 1.0
// @description API documentation for Gamer Social Service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App, memberTarget, socialTarget, chatTarget string) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	// REST 走 gateway 轉發，websocket (/chat/ws) 由前端直連 chat service
	app.All("/member/*", handlers.ServiceProxy("/member", memberTarget))
	app.All("/social/*", handlers.ServiceProxy("/social", socialTarget))
	app.All("/chat/*", handlers.ServiceProxy("/chat", chatTarget))
}
