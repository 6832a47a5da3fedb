package app

import (
	"github.com/gofiber/fiber/v2"
)

// FriendHandler 處理好友相關的 HTTP 請求
type FriendHandler struct {
	Usecase *FriendUseCase
}

// NewFriendHandler 建立 FriendHandler
func NewFriendHandler(usecase *FriendUseCase) *FriendHandler {
	return &FriendHandler{Usecase: usecase}
}

// SendRequest 發好友邀請
// @Summary 發好友邀請
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body object true "邀請對象"
// @Success 200 {object} string "已送出"
// @Failure 400 {object} string "请求错误"
// @Router /social/friends/requests [post]
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	type request struct {
		MemberID string `json:"member_id"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	if err := h.Usecase.SendRequest(c.Context(), currentUser(c), req.MemberID); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "friend request sent", nil)
}

// ListRequests 等待處理的好友邀請
// @Summary 等待處理的好友邀請
// @Tags Friends
// @Produce json
// @Success 200 {object} string "邀請列表"
// @Router /social/friends/requests [get]
func (h *FriendHandler) ListRequests(c *fiber.Ctx) error {
	list, err := h.Usecase.ListRequests(c.Context(), currentUser(c))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "pending requests", list)
}

// ListFriends 好友列表，依最後訊息時間排序
// @Summary 好友列表
// @Description 依最後一則 direct 訊息時間新到舊排序，沒聊過天的在最後
// @Tags Friends
// @Produce json
// @Success 200 {object} string "好友列表"
// @Router /social/friends [get]
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	list, err := h.Usecase.ListFriends(c.Context(), currentUser(c))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "friends", list)
}

// RemoveFriend 解除好友
// @Summary 解除好友
// @Tags Friends
// @Produce json
// @Param memberID path string true "好友 member id"
// @Success 200 {object} string "已解除"
// @Router /social/friends/{memberID} [delete]
func (h *FriendHandler) RemoveFriend(c *fiber.Ctx) error {
	friendID := c.Params("memberID")
	if err := h.Usecase.RemoveFriend(c.Context(), currentUser(c), friendID); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "friend removed", nil)
}
