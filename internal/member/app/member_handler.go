package app

import (
	"fmt"
	"strconv"

	"gamer_social_service/internal/member/domain"
	"gamer_social_service/pkg/logger"
	"gamer_social_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MemberHandler 处理用户相关的 HTTP 请求
type MemberHandler struct {
	Usecase MemberUseCase
}

// NewMemberHandler 创建新的 MemberHandler
func NewMemberHandler(usecase MemberUseCase) *MemberHandler {
	return &MemberHandler{
		Usecase: usecase,
	}
}

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

// Register 注册新用户
// @Summary 注册新用户
// @Description 处理用户注册请求
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "注册请求"
// @Success 200 {object} string "注册成功"
// @Failure 400 {object} string "请求错误"
// @Router /member/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	type request struct {
		UserName    string `json:"user_name"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	logger.Log.Debug("Register request", zap.String("user_name", req.UserName), zap.String("email", req.Email))

	if err := h.Usecase.Register(c.Context(), req.UserName, req.DisplayName, req.Email, req.Password); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	return success(c, "register success", nil)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户通过帐号和密码登录
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "用户登录信息"
// @Success 200 {object} string "登录成功"
// @Failure 401 {object} string "登录失败"
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	type request struct {
		UserName string `json:"user_name"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	logger.Log.Debug("Login", zap.String("UserName", req.UserName))

	token, member, err := h.Usecase.Login(c.Context(), req.UserName, req.Password)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	// token 同時寫入 cookie，websocket 升級時可直接帶上
	c.Cookie(&fiber.Cookie{
		Name:  middlewares.CookieToken,
		Value: token,
	})

	return success(c, "login success", fiber.Map{
		"token":        token,
		"member_id":    member.MemberID,
		"account_type": string(member.AccountType),
		"display_name": member.DisplayName,
	})
}

// Logout 用户登出
// @Summary 用户登出
// @Description 注销用户会话
// @Tags Members
// @Produce json
// @Param auth query string false "token"
// @Success 200 {object} string "注销成功"
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	token, ok := c.Locals(middlewares.TokenRaw).(string)
	if !ok {
		return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("c.Locals(%s) is nill", middlewares.TokenRaw))
	}

	if err := h.Usecase.Logout(c.Context(), token); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	c.ClearCookie(middlewares.CookieToken)
	return success(c, "logout success", nil)
}

// CheckSession 检查 session 是否逾时
// @Summary 检查 session 是否逾时
// @Description 回传 timeout 布尔值，逾时的前端应导回登入页
// @Tags Members
// @Produce json
// @Success 200 {object} string "session 状态"
// @Router /member/session/check [get]
func (h *MemberHandler) CheckSession(c *fiber.Ctx) error {
	token, ok := c.Locals(middlewares.TokenRaw).(string)
	if !ok {
		return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("c.Locals(%s) is nill", middlewares.TokenRaw))
	}

	timeout, err := h.Usecase.CheckSessionTimeout(c.Context(), token)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	return success(c, "check session success", fiber.Map{"timeout": timeout})
}

// ReconnectSession 重新连线延长 session
// @Summary 重新连线延长 session
// @Tags Members
// @Produce json
// @Success 200 {object} string "延长成功"
// @Router /member/session/reconnect [post]
func (h *MemberHandler) ReconnectSession(c *fiber.Ctx) error {
	token, ok := c.Locals(middlewares.TokenRaw).(string)
	if !ok {
		return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("c.Locals(%s) is nill", middlewares.TokenRaw))
	}

	if err := h.Usecase.ReconnectSession(c.Context(), token); err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	return success(c, "reconnect session success", nil)
}

// Me 取得自己的资料
// @Summary 取得自己的资料
// @Tags Members
// @Produce json
// @Success 200 {object} string "用户信息"
// @Router /member/me [get]
func (h *MemberHandler) Me(c *fiber.Ctx) error {
	memberID, _ := c.Locals(middlewares.TokenUserID).(string)

	member, err := h.Usecase.FindMember(c.Context(), &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return fail(c, fiber.StatusNotFound, err.Error())
	}

	return success(c, "get member success", member.ToProfile())
}

// Search 关键字搜寻用户
// @Summary 关键字搜寻用户
// @Description 依 user_name/display_name 模糊搜寻，结果不含自己
// @Tags Members
// @Produce json
// @Param q query string true "关键字"
// @Success 200 {object} string "用户列表"
// @Router /member/search [get]
func (h *MemberHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("q")
	selfID, _ := c.Locals(middlewares.TokenUserID).(string)

	profiles, err := h.Usecase.SearchMembers(c.Context(), keyword, selfID)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	return success(c, "search success", profiles)
}

// UpdateProfile 更新显示名称
// @Summary 更新显示名称
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} string "更新成功"
// @Router /member/profile [put]
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	type request struct {
		DisplayName string `json:"display_name"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	memberID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.Usecase.UpdateProfile(c.Context(), memberID, req.DisplayName); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	return success(c, "update profile success", nil)
}

// UploadAvatar 上传头像
// @Summary 上传头像
// @Tags Members
// @Accept mpfd
// @Produce json
// @Param file formData file true "头像档案"
// @Success 200 {object} string "上传成功"
// @Router /member/avatar [post]
func (h *MemberHandler) UploadAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "open file failed")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	memberID, _ := c.Locals(middlewares.TokenUserID).(string)

	url, err := h.Usecase.UploadAvatar(c.Context(), memberID, file, fileHeader.Size, contentType)
	if err != nil {
		logger.Log.Errorf("upload avatar err :", err)
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return success(c, "upload avatar success", fiber.Map{"url": url})
}

// GetAvatar 取得头像 URL
// @Summary 取得头像 URL
// @Tags Members
// @Produce json
// @Param member_id query string false "member id，不带时取自己的"
// @Success 200 {object} string "头像 URL"
// @Router /member/avatar [get]
func (h *MemberHandler) GetAvatar(c *fiber.Ctx) error {
	memberID := c.Query("member_id")
	if memberID == "" {
		memberID, _ = c.Locals(middlewares.TokenUserID).(string)
	}

	url, err := h.Usecase.AvatarURL(c.Context(), memberID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err.Error())
	}

	return success(c, "get avatar success", fiber.Map{"url": url})
}

// ListMembers 后台列出所有成员
// @Summary 后台列出所有成员
// @Tags Admin
// @Produce json
// @Param limit query int false "每页笔数"
// @Param offset query int false "起始位置"
// @Success 200 {object} string "成员列表"
// @Failure 403 {object} string "无后台权限"
// @Router /member/admin/members [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	profiles, err := h.Usecase.ListMembers(c.Context(), limit, offset)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return success(c, "list members success", profiles)
}

// BanMember 后台封锁帐号
// @Summary 后台封锁帐号
// @Tags Admin
// @Produce json
// @Success 200 {object} string "封锁成功"
// @Failure 403 {object} string "无后台权限"
// @Router /member/admin/members/{memberID}/ban [post]
func (h *MemberHandler) BanMember(c *fiber.Ctx) error {
	if err := h.Usecase.BanMember(c.Context(), c.Params("memberID")); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "ban success", nil)
}

// UnbanMember 后台解除封锁
// @Summary 后台解除封锁
// @Tags Admin
// @Produce json
// @Success 200 {object} string "解除成功"
// @Failure 403 {object} string "无后台权限"
// @Router /member/admin/members/{memberID}/unban [post]
func (h *MemberHandler) UnbanMember(c *fiber.Ctx) error {
	if err := h.Usecase.UnbanMember(c.Context(), c.Params("memberID")); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "unban success", nil)
}

// DeleteMember 后台删除帐号
// @Summary 后台删除帐号
// @Tags Admin
// @Produce json
// @Success 200 {object} string "删除成功"
// @Failure 403 {object} string "无后台权限"
// @Router /member/admin/members/{memberID} [delete]
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.Usecase.DeleteMember(c.Context(), c.Params("memberID")); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "delete success", nil)
}

// ForceLogout 后台强制登出
// @Summary 后台强制登出
// @Tags Admin
// @Produce json
// @Success 200 {object} string "强制登出成功"
// @Failure 403 {object} string "无后台权限"
// @Router /member/admin/members/{memberID}/force_logout [post]
func (h *MemberHandler) ForceLogout(c *fiber.Ctx) error {
	if err := h.Usecase.ForceLogout(c.Context(), c.Params("memberID")); err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, "force logout success", nil)
}
