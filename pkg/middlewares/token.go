package middlewares

import (
	t_token "gamer_social_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenUserID get user form token, set c.locals name
	TokenUserID = "UserID"
	//TokenRole get role form token, set c.locals name
	TokenRole = "role"
	//TokenRaw raw token string, set c.locals name
	TokenRaw = "rawToken"
)

// JWTMiddleware validates JWT in query, cookie or Authorization header
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Query(QueryToken)

		// 如果查詢參數中沒有 token，則嘗試從 Cookie 中獲取
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}

		// 再嘗試 Authorization: Bearer
		if tokenStr == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if len(auth) > 7 && auth[:7] == "Bearer " {
				tokenStr = auth[7:]
			}
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token",
			})
		}

		// Parse and validate token
		token, err := jwt.ParseWithClaims(tokenStr, &t_token.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
			}
			return t_token.JWTSecret, nil
		})

		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Extract claims and pass them to the context
		if claims, ok := token.Claims.(*t_token.Claims); ok && token.Valid {
			c.Locals(TokenUserID, claims.UserID)
			c.Locals(TokenRole, claims.Role)
			c.Locals(TokenRaw, tokenStr)
		} else {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claims",
			})
		}

		return c.Next()
	}
}

// AdminOnly 限制後台路由，非 admin 回 403 帶 accountType
// 前端依 accountType 判斷要不要導回 /home
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(TokenRole).(string)
		if role != string(t_token.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"accountType": role,
				"message":     "admin access required",
			})
		}
		return c.Next()
	}
}
