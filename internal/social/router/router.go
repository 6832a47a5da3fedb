package router

import (
	"gamer_social_service/internal/social/app"
	"gamer_social_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册社交相关的路由
func RegisterRoutes(
	r *fiber.App,
	friendHandler *app.FriendHandler,
	zepChatHandler *app.ZepChatHandler,
	notificationHandler *app.NotificationHandler,
	ticketHandler *app.TicketHandler,
) {
	// 全部路由需要登入
	r.Use(middlewares.JWTMiddleware())

	// 好友
	r.Get("/friends", friendHandler.ListFriends)
	r.Post("/friends/requests", friendHandler.SendRequest)
	r.Get("/friends/requests", friendHandler.ListRequests)
	r.Delete("/friends/:memberID", friendHandler.RemoveFriend)

	// 問答討論串
	r.Post("/zepchats", zepChatHandler.Create)
	r.Get("/zepchats", zepChatHandler.List)
	r.Post("/zepchats/votes", zepChatHandler.Vote)
	r.Get("/zepchats/:zepChatID", zepChatHandler.Get)
	r.Post("/zepchats/:zepChatID/replies", zepChatHandler.Reply)
	r.Post("/zepchats/:zepChatID/replies/:replyID/accept", zepChatHandler.AcceptReply)

	// 通知
	r.Get("/notifications", notificationHandler.List)
	r.Delete("/notifications", notificationHandler.ClearAll)
	r.Post("/notifications/:notificationID/accept", notificationHandler.Accept)
	r.Post("/notifications/:notificationID/reject", notificationHandler.Reject)
	r.Delete("/notifications/:notificationID", notificationHandler.Dismiss)

	// 客服單
	r.Post("/tickets", ticketHandler.Create)
	r.Get("/tickets", ticketHandler.ListMine)
	r.Get("/tickets/:ticketID", ticketHandler.Get)
	r.Post("/tickets/:ticketID/replies", ticketHandler.Respond)

	// 後台路由
	admin := r.Group("/admin", middlewares.AdminOnly())
	admin.Get("/tickets", ticketHandler.ListByStatus)
	admin.Put("/tickets/:ticketID/status", ticketHandler.UpdateStatus)
}
