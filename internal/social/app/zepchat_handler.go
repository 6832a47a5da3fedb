package app

import (
	"strconv"

	"gamer_social_service/internal/social/domain"

	"github.com/gofiber/fiber/v2"
)

// ZepChatHandler 處理問答討論串的 HTTP 請求
type ZepChatHandler struct {
	Usecase *ZepChatUseCase
}

// NewZepChatHandler 建立 ZepChatHandler
func NewZepChatHandler(usecase *ZepChatUseCase) *ZepChatHandler {
	return &ZepChatHandler{Usecase: usecase}
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Create 開新討論串
// @Summary 開新討論串
// @Tags ZepChats
// @Accept json
// @Produce json
// @Param request body object true "標題與內容"
// @Success 200 {object} string "討論串"
// @Failure 400 {object} string "请求错误"
// @Router /social/zepchats [post]
func (h *ZepChatHandler) Create(c *fiber.Ctx) error {
	type request struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	z, err := h.Usecase.Create(c.Context(), currentUser(c), req.Title, req.Content)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "zep chat created", z)
}

// List 搜尋討論串
// @Summary 搜尋討論串
// @Tags ZepChats
// @Produce json
// @Param q query string false "關鍵字"
// @Success 200 {object} string "討論串列表"
// @Router /social/zepchats [get]
func (h *ZepChatHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.Usecase.List(c.Context(), c.Query("q"), limit, offset)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "zep chats", list)
}

// Get 討論串內容含回覆
// @Summary 討論串內容
// @Tags ZepChats
// @Produce json
// @Param zepChatID path int true "討論串 id"
// @Success 200 {object} string "討論串"
// @Failure 404 {object} string "不存在"
// @Router /social/zepchats/{zepChatID} [get]
func (h *ZepChatHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "zepChatID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid zep chat id")
	}
	z, err := h.Usecase.Get(c.Context(), id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "zep chat not found")
	}
	return success(c, "zep chat", z)
}

// Reply 回覆討論串
// @Summary 回覆討論串
// @Tags ZepChats
// @Accept json
// @Produce json
// @Param zepChatID path int true "討論串 id"
// @Param request body object true "回覆內容"
// @Success 200 {object} string "回覆"
// @Router /social/zepchats/{zepChatID}/replies [post]
func (h *ZepChatHandler) Reply(c *fiber.Ctx) error {
	id, err := parseID(c, "zepChatID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid zep chat id")
	}
	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	reply, err := h.Usecase.Reply(c.Context(), id, currentUser(c), req.Content)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "reply created", reply)
}

// Vote 對討論串或回覆投票
// @Summary 投票
// @Description 同方向再投是收回，反方向投票會先收回原本的票
// @Tags ZepChats
// @Accept json
// @Produce json
// @Param request body object true "投票目標與方向"
// @Success 200 {object} string "投票結果"
// @Router /social/zepchats/votes [post]
func (h *ZepChatHandler) Vote(c *fiber.Ctx) error {
	type request struct {
		Target string `json:"target"`
		ID     uint   `json:"id"`
		Kind   string `json:"kind"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	result, err := h.Usecase.Vote(c.Context(), req.Target, req.ID, currentUser(c), domain.VoteKind(req.Kind))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "vote applied", result)
}

// AcceptReply 發問者採納回覆
// @Summary 採納回覆
// @Tags ZepChats
// @Produce json
// @Param zepChatID path int true "討論串 id"
// @Param replyID path int true "回覆 id"
// @Success 200 {object} string "已採納"
// @Failure 403 {object} string "只有發問者可以採納"
// @Router /social/zepchats/{zepChatID}/replies/{replyID}/accept [post]
func (h *ZepChatHandler) AcceptReply(c *fiber.Ctx) error {
	zepChatID, err := parseID(c, "zepChatID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid zep chat id")
	}
	replyID, err := parseID(c, "replyID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid reply id")
	}
	if err := h.Usecase.AcceptReply(c.Context(), zepChatID, replyID, currentUser(c)); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "reply accepted", nil)
}
