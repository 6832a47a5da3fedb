package app

import (
	"gamer_social_service/pkg/middlewares"
	"gamer_social_service/pkg/token"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func currentUser(c *fiber.Ctx) string {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	return userID
}

func isStaff(c *fiber.Ctx) bool {
	role, _ := c.Locals(middlewares.TokenRole).(string)
	return role == string(token.RoleAdmin)
}
