package domain

import (
	"time"

	"gamer_social_service/pkg/encrypt"
	"gamer_social_service/pkg/token"
)

// MemberStatus 用來表示使用者狀態
type MemberStatus int

// 状态: 0=offline, 1=online, 2=ban ,3=delete
const (
	// MemberStatusOffLine 用來表示使用者狀態為離線
	MemberStatusOffLine MemberStatus = iota
	// MemberStatusOnLine 用來表示使用者狀態為上線
	MemberStatusOnLine
	// MemberStatusBan 用來表示使用者狀態為封鎖
	MemberStatusBan
	// MemberStatusDelete 用來表示使用者狀態為刪除
	MemberStatusDelete
)

// Member 用來表示使用者
type Member struct {
	ID             int64
	MemberID       string
	UserName       string
	DisplayName    string
	Email          string
	Password       string
	ProfilePicture string
	AccountType    token.RoleType
	Status         MemberStatus
}

// MemberSession 用來表示使用者的 Session
type MemberSession struct {
	Token        string    `json:"Token"`
	MemberID     string    `json:"MemberID"`
	CreatedAt    time.Time `json:"CreatedAt"`
	LastActivity time.Time `json:"LastActivity"`
	ExpiredAt    time.Time `json:"ExpiredAt"`
}

// IsPasswordMatch 密碼驗證
func (m *Member) IsPasswordMatch(inputPwd string) error {
	err := encrypt.CheckPassword(m.Password, inputPwd)
	return err
}

// IsAdmin check account type
func (m *Member) IsAdmin() bool {
	return m.AccountType == token.RoleAdmin
}

// CanLogin ban 或已刪除的帳號不能登入
func (m *Member) CanLogin() bool {
	return m.Status != MemberStatusBan && m.Status != MemberStatusDelete
}

// IsExpired 檢查 Session 是否已過期
func (s *MemberSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}

// MemberQuery join conditions are used to query members
type MemberQuery struct {
	ID       *int64  `db:"id"`
	MemberID *string `db:"member_id"`
	UserName *string `db:"user_name"`
	Email    *string `db:"email"`
}

// MemberProfile 對外公開的使用者資料，不含密碼
type MemberProfile struct {
	MemberID       string `json:"member_id"`
	UserName       string `json:"user_name"`
	DisplayName    string `json:"display_name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	AccountType    string `json:"account_type"`
	Status         int    `json:"status"`
}

// ToProfile 轉成對外的公開資料
func (m *Member) ToProfile() MemberProfile {
	return MemberProfile{
		MemberID:       m.MemberID,
		UserName:       m.UserName,
		DisplayName:    m.DisplayName,
		Email:          m.Email,
		ProfilePicture: m.ProfilePicture,
		AccountType:    string(m.AccountType),
		Status:         int(m.Status),
	}
}
