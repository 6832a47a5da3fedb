package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gamer_social_service/internal/member/domain"
	"gamer_social_service/internal/member/repository"
	"gamer_social_service/pkg/config"
	"gamer_social_service/pkg/database"
	"gamer_social_service/pkg/encrypt"
	"gamer_social_service/pkg/logger"
	token "gamer_social_service/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const avatarURLExpiry = 60 * time.Minute

// MemberUseCase 這裡封裝了對外提供的應用服務
type MemberUseCase interface {
	Register(ctx context.Context, userName, displayName, email, password string) error
	FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error)
	Login(ctx context.Context, userName, password string) (string, *domain.Member, error)
	Logout(ctx context.Context, token string) error
	ForceLogout(ctx context.Context, memberID string) error
	CheckSessionTimeout(ctx context.Context, token string) (bool, error)
	ReconnectSession(ctx context.Context, token string) error
	SearchMembers(ctx context.Context, keyword, selfID string) ([]domain.MemberProfile, error)
	UpdateProfile(ctx context.Context, memberID, displayName string) error
	UploadAvatar(ctx context.Context, memberID string, reader io.Reader, size int64, contentType string) (string, error)
	AvatarURL(ctx context.Context, memberID string) (string, error)
	BanMember(ctx context.Context, memberID string) error
	UnbanMember(ctx context.Context, memberID string) error
	DeleteMember(ctx context.Context, memberID string) error
	ListMembers(ctx context.Context, limit, offset int) ([]domain.MemberProfile, error)
}

type memberUseCase struct {
	memberRepo  repository.MemberRepository
	sessionTTL  time.Duration
	redisRepo   database.RedisRepository[domain.MemberSession]
	avatarStore repository.AvatarStore
}

// NewMemberUseCase 建立一個新的 MemberUseCase
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.MemberSession],
	avatarStore repository.AvatarStore,
) MemberUseCase {
	return &memberUseCase{
		memberRepo:  memberRepo,
		sessionTTL:  sessionTTL,
		redisRepo:   redisRepo,
		avatarStore: avatarStore,
	}
}

// Register
func (m *memberUseCase) Register(ctx context.Context, userName, displayName, email, password string) error {
	if userName == "" || email == "" {
		return errors.New("user name and email are required")
	}

	if err := encrypt.ValidatePasswordStrength(password); err != nil {
		return err
	}

	// 檢查 user name / email 是否已存在
	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{UserName: &userName}); err == nil {
		return errors.New("user name already exists")
	}
	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return errors.New("email already exists")
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		logger.Log.Errorf("password err :", err)
		return err
	}

	if displayName == "" {
		displayName = userName
	}

	// 建立新使用者
	member := domain.Member{
		MemberID:    uuid.New().String(),
		UserName:    userName,
		DisplayName: displayName,
		Email:       email,
		Password:    pw,
		AccountType: token.RoleUser,
		Status:      domain.MemberStatusOffLine,
	}

	logger.Log.Info(fmt.Sprintf("usecase Register : %s", member.UserName))

	if err := m.memberRepo.CreateUser(ctx, &member); err != nil {
		return err
	}

	return nil
}

// FindMember 依條件尋找使用者
func (m *memberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	return m.memberRepo.FindByMember(ctx, param)
}

// Login
func (m *memberUseCase) Login(ctx context.Context, userName, password string) (string, *domain.Member, error) {
	// 取得使用者
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{UserName: &userName})
	if err != nil {
		logger.Log.Error("user name can't find!!!")
		return "", nil, errors.New("user not found")
	}

	if !member.CanLogin() {
		logger.Log.Error("member can't login", zap.String("MemberID", member.MemberID), zap.Int("status", int(member.Status)))
		return "", nil, errors.New("account is not available")
	}

	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Error("password can't match!!!")
		return "", nil, err
	}

	member.Status = domain.MemberStatusOnLine

	t, err := token.GenerateJWT(member.MemberID, string(member.AccountType), config.EnvConfig.MemberService)
	if err != nil {
		return "", nil, err
	}
	now := time.Now()
	session := domain.MemberSession{
		Token:        t,
		MemberID:     member.MemberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}

	m.redisRepo.Set(context.Background(), member.MemberID, session, m.sessionTTL)

	if err := m.memberRepo.UpdateMemberStatus(ctx, member); err != nil {
		return "", nil, err
	}

	return t, member, nil
}

// Logout
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	// 取得使用者
	tokenInfo, err := token.ParseJWT(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return err
	}
	logger.Log.Debug("logout", zap.String("member token info", fmt.Sprintf("%v", tokenInfo)))

	m.redisRepo.Del(context.Background(), tokenInfo.UserID)

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: tokenInfo.UserID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// ForceLogout
// 直接把該 memberID 下的 session 清除
func (m *memberUseCase) ForceLogout(ctx context.Context, memberID string) error {
	m.redisRepo.Del(context.Background(), memberID)

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: memberID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// CheckSessionTimeout
func (m *memberUseCase) CheckSessionTimeout(ctx context.Context, t string) (bool, error) {
	// 取得使用者
	tokenInfo, err := token.ParseJWT(t)
	if err != nil {
		logger.Log.Error("CheckSessionTimeout err :", zap.String("err", err.Error()))
		return true, err
	}
	logger.Log.Debug("CheckSessionTimeout", zap.String("member token info", fmt.Sprintf("%v", tokenInfo)))

	ttl, err := m.redisRepo.GetTTL(context.Background(), tokenInfo.UserID)
	if err != nil {
		return true, err
	}

	if ttl > 0 {
		return false, nil
	}
	return true, nil
}

// ReconnectSession 重新連線時延長 session
func (m *memberUseCase) ReconnectSession(ctx context.Context, t string) error {
	// 取得使用者
	tokenInfo, err := token.ParseJWT(t)
	if err != nil {
		logger.Log.Error("ReconnectSession err :", zap.String("err", err.Error()))
		return err
	}
	logger.Log.Debug("ReconnectSession", zap.String("member token info", fmt.Sprintf("%v", tokenInfo)))

	m.redisRepo.ExtendTTL(context.Background(), tokenInfo.UserID, m.sessionTTL)

	return nil
}

// SearchMembers 關鍵字搜尋使用者，結果不含自己
func (m *memberUseCase) SearchMembers(ctx context.Context, keyword, selfID string) ([]domain.MemberProfile, error) {
	if keyword == "" {
		return nil, errors.New("keyword is required")
	}

	members, err := m.memberRepo.SearchMembers(ctx, keyword, 20)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.MemberProfile, 0, len(members))
	for _, member := range members {
		if member.MemberID == selfID {
			continue
		}
		profile := member.ToProfile()
		profile.Email = ""
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// UpdateProfile 更新顯示名稱
func (m *memberUseCase) UpdateProfile(ctx context.Context, memberID, displayName string) error {
	if displayName == "" {
		return errors.New("display name is required")
	}

	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return err
	}

	member.DisplayName = displayName
	return m.memberRepo.UpdateProfile(ctx, member)
}

// UploadAvatar 上傳頭像到 minio，回傳 presigned URL
func (m *memberUseCase) UploadAvatar(ctx context.Context, memberID string, reader io.Reader, size int64, contentType string) (string, error) {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return "", err
	}

	objectName, err := m.avatarStore.Upload(ctx, memberID, reader, size, contentType)
	if err != nil {
		return "", err
	}

	member.ProfilePicture = objectName
	if err := m.memberRepo.UpdateProfile(ctx, member); err != nil {
		return "", err
	}

	return m.avatarStore.PresignURL(ctx, objectName, avatarURLExpiry)
}

// AvatarURL 取得頭像的 presigned URL
func (m *memberUseCase) AvatarURL(ctx context.Context, memberID string) (string, error) {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return "", err
	}
	if member.ProfilePicture == "" {
		return "", errors.New("no profile picture")
	}
	return m.avatarStore.PresignURL(ctx, member.ProfilePicture, avatarURLExpiry)
}

// BanMember 後台封鎖帳號並強制登出
func (m *memberUseCase) BanMember(ctx context.Context, memberID string) error {
	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: memberID,
		Status:   domain.MemberStatusBan,
	}); err != nil {
		return err
	}
	m.redisRepo.Del(context.Background(), memberID)
	return nil
}

// UnbanMember 後台解除封鎖
func (m *memberUseCase) UnbanMember(ctx context.Context, memberID string) error {
	return m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: memberID,
		Status:   domain.MemberStatusOffLine,
	})
}

// DeleteMember 後台刪除帳號，軟刪除並清 session 與頭像
func (m *memberUseCase) DeleteMember(ctx context.Context, memberID string) error {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return err
	}

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: memberID,
		Status:   domain.MemberStatusDelete,
	}); err != nil {
		return err
	}
	m.redisRepo.Del(context.Background(), memberID)

	// 頭像物件一併清掉，失敗只記 log
	if m.avatarStore != nil && member.ProfilePicture != "" {
		if err := m.avatarStore.Remove(ctx, member.ProfilePicture); err != nil {
			logger.Log.Errorf("remove avatar err :", err)
		}
	}
	return nil
}

// ListMembers 後台分頁列出所有成員
func (m *memberUseCase) ListMembers(ctx context.Context, limit, offset int) ([]domain.MemberProfile, error) {
	members, err := m.memberRepo.ListMembers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.MemberProfile, 0, len(members))
	for _, member := range members {
		profiles = append(profiles, member.ToProfile())
	}
	return profiles, nil
}
