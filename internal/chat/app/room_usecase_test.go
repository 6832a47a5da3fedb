package app

import (
	"context"
	"errors"
	"testing"

	"gamer_social_service/internal/chat/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// OpenDirect 不存在時建立房間，雙方呼叫得到同一個 ID
func TestRoomUseCase_OpenDirect_CreatesRoom(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	roomID := domain.DirectRoomID("user-a", "user-b")
	mockRoomRepo.On("FindByID", ctx, roomID).Return(nil, errors.New("not found"))
	mockRoomRepo.On("CreateRoom", ctx, mock.MatchedBy(func(room *domain.ChatRoom) bool {
		return room.ID == roomID && room.RoomType == domain.ChatRoomTypeDirect && len(room.Members) == 2
	})).Return(nil)

	uc := NewRoomUseCase(mockRoomRepo)
	got, err := uc.OpenDirect(ctx, "user-a", "user-b")

	assert.NoError(t, err)
	assert.Equal(t, roomID, got)
	mockRoomRepo.AssertExpectations(t)
}

// OpenDirect 已存在時直接回傳，參數順序相反也是同一間
func TestRoomUseCase_OpenDirect_Existing(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	roomID := domain.DirectRoomID("user-b", "user-a")
	existRoom := &domain.ChatRoom{ID: roomID, RoomType: domain.ChatRoomTypeDirect}
	mockRoomRepo.On("FindByID", ctx, roomID).Return(existRoom, nil)

	uc := NewRoomUseCase(mockRoomRepo)
	got, err := uc.OpenDirect(ctx, "user-b", "user-a")

	assert.NoError(t, err)
	assert.Equal(t, roomID, got)
	mockRoomRepo.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything)
}

func TestRoomUseCase_OpenDirect_SelfChat(t *testing.T) {
	uc := NewRoomUseCase(new(MockRoomRepository))
	_, err := uc.OpenDirect(context.Background(), "user-a", "user-a")
	assert.Error(t, err)
}

// CreateCommunity 建立者成為 admin
func TestRoomUseCase_CreateCommunity(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	mockRoomRepo.On("CreateRoom", ctx, mock.MatchedBy(func(room *domain.ChatRoom) bool {
		return room.RoomType == domain.ChatRoomTypeCommunity &&
			room.Name == "go gamers" &&
			len(room.Admins) == 1 && room.Admins[0] == "owner"
	})).Return(nil)

	uc := NewRoomUseCase(mockRoomRepo)
	roomID, err := uc.CreateCommunity(ctx, "owner", "go gamers", domain.JoinModeOpen, "")

	assert.NoError(t, err)
	assert.NotEmpty(t, roomID)
	mockRoomRepo.AssertExpectations(t)
}

// password join mode 必須帶密碼
func TestRoomUseCase_CreateCommunity_PasswordRequired(t *testing.T) {
	uc := NewRoomUseCase(new(MockRoomRepository))
	_, err := uc.CreateCommunity(context.Background(), "owner", "secret club", domain.JoinModePassword, "")
	assert.Error(t, err)
}

// JoinCommunity 密碼錯誤被拒
func TestRoomUseCase_JoinCommunity_WrongPassword(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	room := &domain.ChatRoom{
		ID:       "room-1",
		RoomType: domain.ChatRoomTypeCommunity,
		JoinMode: domain.JoinModePassword,
		Password: "s3cret",
		Members:  []string{"owner"},
	}
	mockRoomRepo.On("FindByID", ctx, "room-1").Return(room, nil)

	uc := NewRoomUseCase(mockRoomRepo)
	err := uc.JoinCommunity(ctx, "room-1", "user-b", "wrong")

	assert.Error(t, err)
	mockRoomRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

// JoinCommunity open 模式直接加入
func TestRoomUseCase_JoinCommunity_Open(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	room := &domain.ChatRoom{
		ID:       "room-1",
		RoomType: domain.ChatRoomTypeCommunity,
		JoinMode: domain.JoinModeOpen,
		Members:  []string{"owner"},
	}
	mockRoomRepo.On("FindByID", ctx, "room-1").Return(room, nil)
	mockRoomRepo.On("AddMember", ctx, "room-1", "user-b").Return(nil)

	uc := NewRoomUseCase(mockRoomRepo)
	err := uc.JoinCommunity(ctx, "room-1", "user-b", "")

	assert.NoError(t, err)
	mockRoomRepo.AssertExpectations(t)
}

// 最後一位成員離開時刪除房間
func TestRoomUseCase_ExitCommunity_LastMember(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := new(MockRoomRepository)

	room := &domain.ChatRoom{
		ID:       "room-1",
		RoomType: domain.ChatRoomTypeCommunity,
		Members:  []string{"owner"},
	}
	mockRoomRepo.On("FindByID", ctx, "room-1").Return(room, nil)
	mockRoomRepo.On("RemoveMember", ctx, "room-1", "owner").Return(nil)
	mockRoomRepo.On("DeleteRoom", ctx, "room-1").Return(nil)

	uc := NewRoomUseCase(mockRoomRepo)
	err := uc.ExitCommunity(ctx, "room-1", "owner")

	assert.NoError(t, err)
	mockRoomRepo.AssertExpectations(t)
}
