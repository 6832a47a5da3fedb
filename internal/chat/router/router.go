package router

import (
	"context"

	"gamer_social_service/internal/chat/app"
	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes 注册聊天相关的路由
func RegisterRoutes(r *fiber.App, chatWebsocket *app.ChatWebsocketHandler, roomUC *app.RoomUseCase, messageUC *app.SendMessageUseCase) {
	r.Use(middlewares.JWTMiddleware())

	r.Get("/ws", websocket.New(func(c *websocket.Conn) {
		chatWebsocket.HandleConnection(context.Background(), c)
	}))

	// REST API，前端初始載入用，即時互動走 websocket
	r.Get("/rooms", func(c *fiber.Ctx) error {
		userID, _ := c.Locals(middlewares.TokenUserID).(string)
		rooms, err := roomUC.ListRooms(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "get rooms success",
			"data":    rooms,
		})
	})

	r.Get("/rooms/:roomID/messages", func(c *fiber.Ctx) error {
		userID, _ := c.Locals(middlewares.TokenUserID).(string)

		// 帶 since 是斷線重連的補拉，其餘走一般歷史查詢
		var messages []domain.ChatMessage
		var err error
		if since := int64(c.QueryInt("since")); since > 0 {
			messages, err = messageUC.GetHistorySince(c.Context(), c.Params("roomID"), userID, since)
		} else {
			before := int64(c.QueryInt("before"))
			messages, err = messageUC.GetHistory(c.Context(), c.Params("roomID"), userID, before)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "get messages success",
			"data":    messages,
		})
	})

	r.Get("/unread", func(c *fiber.Ctx) error {
		userID, _ := c.Locals(middlewares.TokenUserID).(string)
		unreads, err := messageUC.GetCountUnreadMessages(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "get unread success",
			"data":    unreads,
		})
	})
}
