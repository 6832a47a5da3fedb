package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"gamer_social_service/internal/member/domain"
	"gamer_social_service/pkg/encrypt"
	"gamer_social_service/pkg/logger"
	token "gamer_social_service/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func hashForTest(password string) (string, error) {
	return encrypt.HashPassword(password)
}

func bytesReader() io.Reader {
	return strings.NewReader("data")
}

// MockMemberRepo Mock MemberRepository
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) CreateUser(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) UpdateMemberStatus(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) UpdateProfile(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	args := m.Called(ctx, memberQuery)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockMemberRepo) SearchMembers(ctx context.Context, keyword string, limit int) ([]domain.Member, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockMemberRepo) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRedisRepo 針對 MemberSession 的 Mock
type MockRedisRepo struct {
	mock.Mock
}

// Set 模擬 Redis Set 操作
func (m *MockRedisRepo) Set(ctx context.Context, key string, value domain.MemberSession, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Get 模擬 Redis Get 操作
func (m *MockRedisRepo) Get(ctx context.Context, key string) (domain.MemberSession, error) {
	args := m.Called(ctx, key)
	if args.Get(0) != nil {
		return args.Get(0).(domain.MemberSession), args.Error(1)
	}
	return domain.MemberSession{}, args.Error(1)
}

// Del 模擬 Redis Del 操作
func (m *MockRedisRepo) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// ExtendTTL 模擬 Redis ExtendTTL 操作
func (m *MockRedisRepo) ExtendTTL(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

// GetTTL 模擬 Redis GetTTL 操作
func (m *MockRedisRepo) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

// MockAvatarStore Mock AvatarStore
type MockAvatarStore struct {
	mock.Mock
}

func (m *MockAvatarStore) Upload(ctx context.Context, memberID string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, memberID, reader, size, contentType)
	return args.String(0), args.Error(1)
}
func (m *MockAvatarStore) PresignURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}
func (m *MockAvatarStore) Remove(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func TestMemberUseCase_Register(t *testing.T) {
	ctx := context.Background()
	userName := "gamer01"
	email := "test@example.com"
	password := "!!Securepassword111"

	mockRepo := new(MockMemberRepo)
	mockRedis := new(MockRedisRepo)

	logger.SetNewNop()

	// **情境 1: 註冊成功**
	t.Run("成功註冊", func(t *testing.T) {
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(member *domain.Member) bool {
			// 新帳號落庫時就要有明確的 status 與空字串頭像，查詢掃描不吃 NULL
			return member.UserName == userName && member.AccountType == token.RoleUser && member.Password != password &&
				member.Status == domain.MemberStatusOffLine && member.ProfilePicture == ""
		})).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		err := uc.Register(ctx, userName, "Gamer One", email, password)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	// **情境 2: user name 已存在**
	t.Run("user name 已存在", func(t *testing.T) {
		existingUser := &domain.Member{
			ID:       1,
			MemberID: "AAA",
			UserName: userName,
			Email:    email,
			Status:   domain.MemberStatusOffLine,
		}

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).
			Return(existingUser, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		err := uc.Register(ctx, userName, "", email, password)

		assert.Error(t, err)
		assert.Equal(t, "user name already exists", err.Error())
		mockRepo.AssertExpectations(t)
	})

	// **情境 3: 弱密碼被拒**
	t.Run("弱密碼被拒", func(t *testing.T) {
		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		err := uc.Register(ctx, userName, "", email, "weak")

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	// **情境 4: 建立用戶失敗**
	t.Run("建立用戶失敗", func(t *testing.T) {
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("CreateUser", ctx, mock.Anything).Return(errors.New("db error")).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		err := uc.Register(ctx, userName, "", email, password)

		assert.Error(t, err)
		assert.Equal(t, "db error", err.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberUseCase_Login(t *testing.T) {
	ctx := context.Background()
	userName := "gamer01"
	password := "!!Securepassword111"

	logger.SetNewNop()

	hashed, _ := hashForTest(password)

	// **情境 1: 登入成功**
	t.Run("登入成功", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		member := &domain.Member{
			ID:          1,
			MemberID:    "member-1",
			UserName:    userName,
			Password:    hashed,
			AccountType: token.RoleUser,
			Status:      domain.MemberStatusOffLine,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).Return(member, nil).Once()
		mockRedis.On("Set", mock.Anything, "member-1", mock.Anything, time.Hour).Return(nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.Status == domain.MemberStatusOnLine
		})).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		tokenStr, got, err := uc.Login(ctx, userName, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenStr)
		assert.Equal(t, "member-1", got.MemberID)
		mockRepo.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	// **情境 2: 密碼錯誤**
	t.Run("密碼錯誤", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		member := &domain.Member{
			MemberID: "member-1",
			UserName: userName,
			Password: hashed,
			Status:   domain.MemberStatusOffLine,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).Return(member, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		_, _, err := uc.Login(ctx, userName, "wrong-password")

		assert.Error(t, err)
		mockRedis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	// **情境 3: 封鎖帳號不能登入**
	t.Run("封鎖帳號不能登入", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		member := &domain.Member{
			MemberID: "member-1",
			UserName: userName,
			Password: hashed,
			Status:   domain.MemberStatusBan,
		}
		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{UserName: &userName}).Return(member, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		_, _, err := uc.Login(ctx, userName, password)

		assert.Error(t, err)
		assert.Equal(t, "account is not available", err.Error())
	})
}

func TestMemberUseCase_CheckSessionTimeout(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	tokenStr, err := token.GenerateJWT("member-1", string(token.RoleUser), "member_service")
	assert.NoError(t, err)

	t.Run("session 還有 TTL 不算逾時", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRedis.On("GetTTL", mock.Anything, "member-1").Return(600, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		timeout, err := uc.CheckSessionTimeout(ctx, tokenStr)

		assert.NoError(t, err)
		assert.False(t, timeout)
		mockRedis.AssertExpectations(t)
	})

	t.Run("session 已經不在 redis 算逾時", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRedis.On("GetTTL", mock.Anything, "member-1").Return(0, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		timeout, err := uc.CheckSessionTimeout(ctx, tokenStr)

		assert.NoError(t, err)
		assert.True(t, timeout)
	})

	t.Run("壞掉的 token 視為逾時", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		timeout, err := uc.CheckSessionTimeout(ctx, "not-a-token")

		assert.Error(t, err)
		assert.True(t, timeout)
		mockRedis.AssertNotCalled(t, "GetTTL", mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_ReconnectSession(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	tokenStr, err := token.GenerateJWT("member-1", string(token.RoleUser), "member_service")
	assert.NoError(t, err)

	t.Run("重連後延長 session TTL", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		mockRedis.On("ExtendTTL", mock.Anything, "member-1", time.Hour).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		assert.NoError(t, uc.ReconnectSession(ctx, tokenStr))
		mockRedis.AssertExpectations(t)
	})

	t.Run("壞掉的 token 不會動到 session", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
		assert.Error(t, uc.ReconnectSession(ctx, "not-a-token"))
		mockRedis.AssertNotCalled(t, "ExtendTTL", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_SearchMembers(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockRepo := new(MockMemberRepo)
	mockRedis := new(MockRedisRepo)

	members := []domain.Member{
		{MemberID: "self", UserName: "me", Email: "me@example.com"},
		{MemberID: "other", UserName: "metal_gamer", Email: "other@example.com"},
	}
	mockRepo.On("SearchMembers", ctx, "me", 20).Return(members, nil).Once()

	uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
	profiles, err := uc.SearchMembers(ctx, "me", "self")

	assert.NoError(t, err)
	// 結果不含自己，也不洩漏 email
	assert.Len(t, profiles, 1)
	assert.Equal(t, "other", profiles[0].MemberID)
	assert.Empty(t, profiles[0].Email)
}

func TestMemberUseCase_BanMember(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockRepo := new(MockMemberRepo)
	mockRedis := new(MockRedisRepo)

	mockRepo.On("UpdateMemberStatus", ctx, mock.MatchedBy(func(m *domain.Member) bool {
		return m.MemberID == "member-1" && m.Status == domain.MemberStatusBan
	})).Return(nil).Once()
	mockRedis.On("Del", mock.Anything, "member-1").Return(nil).Once()

	uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, nil)
	err := uc.BanMember(ctx, "member-1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRedis.AssertExpectations(t)
}

func TestMemberUseCase_DeleteMember(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	memberID := "member-1"

	t.Run("刪除帳號連頭像物件一起清", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		mockStore := new(MockAvatarStore)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{MemberID: &memberID}).Return(&domain.Member{
			MemberID:       memberID,
			ProfilePicture: "avatars/member-1",
		}, nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.MemberID == memberID && m.Status == domain.MemberStatusDelete
		})).Return(nil).Once()
		mockRedis.On("Del", mock.Anything, memberID).Return(nil).Once()
		mockStore.On("Remove", ctx, "avatars/member-1").Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, mockStore)
		err := uc.DeleteMember(ctx, memberID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("沒有頭像就不呼叫物件刪除", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		mockStore := new(MockAvatarStore)

		mockRepo.On("FindByMember", ctx, &domain.MemberQuery{MemberID: &memberID}).Return(&domain.Member{
			MemberID: memberID,
		}, nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, mock.Anything).Return(nil).Once()
		mockRedis.On("Del", mock.Anything, memberID).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, mockStore)
		err := uc.DeleteMember(ctx, memberID)

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockRepo := new(MockMemberRepo)
	mockRedis := new(MockRedisRepo)
	mockStore := new(MockAvatarStore)

	memberID := "member-1"
	member := &domain.Member{MemberID: memberID, UserName: "gamer01"}

	mockRepo.On("FindByMember", ctx, &domain.MemberQuery{MemberID: &memberID}).Return(member, nil).Once()
	mockStore.On("Upload", ctx, memberID, mock.Anything, int64(4), "image/png").Return("avatars/member-1", nil).Once()
	mockRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(m *domain.Member) bool {
		return m.ProfilePicture == "avatars/member-1"
	})).Return(nil).Once()
	mockStore.On("PresignURL", ctx, "avatars/member-1", mock.Anything).Return("http://minio/avatars/member-1", nil).Once()

	uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis, mockStore)
	url, err := uc.UploadAvatar(ctx, memberID, bytesReader(), 4, "image/png")

	assert.NoError(t, err)
	assert.Equal(t, "http://minio/avatars/member-1", url)
	mockStore.AssertExpectations(t)
}
