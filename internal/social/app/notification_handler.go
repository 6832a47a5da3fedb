package app

import (
	"github.com/gofiber/fiber/v2"
)

// NotificationHandler 處理通知相關的 HTTP 請求
type NotificationHandler struct {
	Usecase *NotificationUseCase
}

// NewNotificationHandler 建立 NotificationHandler
func NewNotificationHandler(usecase *NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{Usecase: usecase}
}

// List 通知列表依分類分組
// @Summary 通知列表
// @Description 回傳 friends/community/zepchats/others 四個分類，沒通知的分類是空陣列
// @Tags Notifications
// @Produce json
// @Success 200 {object} string "通知列表"
// @Router /social/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	partitioned, err := h.Usecase.List(c.Context(), currentUser(c))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "notifications", partitioned)
}

// Accept 從通知接受好友邀請
// @Summary 接受好友邀請
// @Tags Notifications
// @Produce json
// @Param notificationID path int true "通知 id"
// @Success 200 {object} string "已接受"
// @Router /social/notifications/{notificationID}/accept [post]
func (h *NotificationHandler) Accept(c *fiber.Ctx) error {
	id, err := parseID(c, "notificationID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid notification id")
	}
	if err := h.Usecase.AcceptFriendRequest(c.Context(), currentUser(c), id); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "friend request accepted", nil)
}

// Reject 從通知拒絕好友邀請
// @Summary 拒絕好友邀請
// @Tags Notifications
// @Produce json
// @Param notificationID path int true "通知 id"
// @Success 200 {object} string "已拒絕"
// @Router /social/notifications/{notificationID}/reject [post]
func (h *NotificationHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c, "notificationID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid notification id")
	}
	if err := h.Usecase.RejectFriendRequest(c.Context(), currentUser(c), id); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "friend request rejected", nil)
}

// Dismiss 刪掉單一通知
// @Summary 刪掉通知
// @Tags Notifications
// @Produce json
// @Param notificationID path int true "通知 id"
// @Success 200 {object} string "已刪除"
// @Router /social/notifications/{notificationID} [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	id, err := parseID(c, "notificationID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid notification id")
	}
	if err := h.Usecase.Dismiss(c.Context(), currentUser(c), id); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "notification dismissed", nil)
}

// ClearAll 清空全部通知
// @Summary 清空通知
// @Tags Notifications
// @Produce json
// @Success 200 {object} string "已清空"
// @Router /social/notifications [delete]
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.Usecase.ClearAll(c.Context(), currentUser(c)); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "notifications cleared", nil)
}
