package app

import (
	"gamer_social_service/internal/social/domain"

	"github.com/gofiber/fiber/v2"
)

// TicketHandler 處理客服單的 HTTP 請求
type TicketHandler struct {
	Usecase *TicketUseCase
}

// NewTicketHandler 建立 TicketHandler
func NewTicketHandler(usecase *TicketUseCase) *TicketHandler {
	return &TicketHandler{Usecase: usecase}
}

// Create 建立客服單
// @Summary 建立客服單
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body object true "主旨與內容"
// @Success 200 {object} string "客服單"
// @Failure 400 {object} string "请求错误"
// @Router /social/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	type request struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	ticket, err := h.Usecase.Create(c.Context(), currentUser(c), req.Subject, req.Body)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "ticket created", ticket)
}

// ListMine 自己的客服單
// @Summary 自己的客服單
// @Tags Tickets
// @Produce json
// @Success 200 {object} string "客服單列表"
// @Router /social/tickets [get]
func (h *TicketHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.Usecase.ListMine(c.Context(), currentUser(c))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "tickets", list)
}

// Get 客服單內容含回覆
// @Summary 客服單內容
// @Tags Tickets
// @Produce json
// @Param ticketID path int true "客服單 id"
// @Success 200 {object} string "客服單"
// @Failure 404 {object} string "不存在"
// @Router /social/tickets/{ticketID} [get]
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "ticketID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid ticket id")
	}
	ticket, err := h.Usecase.Get(c.Context(), currentUser(c), isStaff(c), id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err.Error())
	}
	return success(c, "ticket", ticket)
}

// Respond 回覆客服單
// @Summary 回覆客服單
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticketID path int true "客服單 id"
// @Param request body object true "回覆內容"
// @Success 200 {object} string "回覆"
// @Router /social/tickets/{ticketID}/replies [post]
func (h *TicketHandler) Respond(c *fiber.Ctx) error {
	id, err := parseID(c, "ticketID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid ticket id")
	}
	type request struct {
		Body string `json:"body"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	reply, err := h.Usecase.Respond(c.Context(), id, currentUser(c), req.Body, isStaff(c))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "reply created", reply)
}

// ListByStatus 後台依狀態撈客服單
// @Summary 後台客服單列表
// @Tags Admin
// @Produce json
// @Param status query string false "狀態，預設 open"
// @Success 200 {object} string "客服單列表"
// @Router /social/admin/tickets [get]
func (h *TicketHandler) ListByStatus(c *fiber.Ctx) error {
	status := domain.TicketStatus(c.Query("status", string(domain.TicketOpen)))
	list, err := h.Usecase.ListByStatus(c.Context(), status)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "tickets", list)
}

// UpdateStatus 後台更新客服單狀態
// @Summary 更新客服單狀態
// @Tags Admin
// @Accept json
// @Produce json
// @Param ticketID path int true "客服單 id"
// @Param request body object true "目標狀態"
// @Success 200 {object} string "已更新"
// @Failure 400 {object} string "不合法的狀態流轉"
// @Router /social/admin/tickets/{ticketID}/status [put]
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "ticketID")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid ticket id")
	}
	type request struct {
		Status string `json:"status"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}
	if err := h.Usecase.UpdateStatus(c.Context(), id, domain.TicketStatus(req.Status)); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return success(c, "status updated", nil)
}
