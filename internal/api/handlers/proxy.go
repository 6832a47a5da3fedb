package handlers

import (
	"strings"

	"gamer_social_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"go.uber.org/zap"
)

// ServiceProxy 將 gateway 收到的請求轉發到內部服務
// prefix 會被剝掉，/member/login 轉發後是 <target>/login
func ServiceProxy(prefix, target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := strings.TrimPrefix(c.OriginalURL(), prefix)
		if path == "" {
			path = "/"
		}
		url := target + path

		logger.Log.Debug("proxy", zap.String("from", c.OriginalURL()), zap.String("to", url))

		if err := proxy.Do(c, url); err != nil {
			logger.Log.Errorf("proxy request failed: ", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": "upstream service unavailable",
			})
		}
		// 轉發後移除上游的 Server header
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}
