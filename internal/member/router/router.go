package router

import (
	"gamer_social_service/internal/member/app"
	"gamer_social_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册用户相关的路由
func RegisterRoutes(r *fiber.App, handler *app.MemberHandler) {
	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)

	// 以下路由需要登入
	r.Use(middlewares.JWTMiddleware())

	r.Post("/logout", handler.Logout)
	r.Get("/session/check", handler.CheckSession)
	r.Post("/session/reconnect", handler.ReconnectSession)
	r.Get("/me", handler.Me)
	r.Get("/search", handler.Search)
	r.Put("/profile", handler.UpdateProfile)
	r.Post("/avatar", handler.UploadAvatar)
	r.Get("/avatar", handler.GetAvatar)

	// 後台路由
	admin := r.Group("/admin", middlewares.AdminOnly())
	admin.Get("/members", handler.ListMembers)
	admin.Post("/members/:memberID/ban", handler.BanMember)
	admin.Post("/members/:memberID/unban", handler.UnbanMember)
	admin.Delete("/members/:memberID", handler.DeleteMember)
	admin.Post("/members/:memberID/force_logout", handler.ForceLogout)
}
