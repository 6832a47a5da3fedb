package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/internal/chat/repository"
	"gamer_social_service/pkg"
)

// RoomUseCase - 用於建立聊天室 (1對1 或社群)
type RoomUseCase struct {
	roomRepo repository.RoomRepository
}

// NewRoomUseCase init room use case
func NewRoomUseCase(r repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{
		roomRepo: r,
	}
}

// OpenDirect 開啟 1對1 聊天室
// 房間 ID 由兩位成員的 ID 推導，不存在時建立，已存在時直接回傳
// 雙方各自呼叫得到同一個房間
func (uc *RoomUseCase) OpenDirect(ctx context.Context, userID, friendID string) (string, error) {
	if friendID == "" || friendID == userID {
		return "", errors.New("invalid friend id")
	}

	roomID := domain.DirectRoomID(userID, friendID)
	existRoom, _ := uc.roomRepo.FindByID(ctx, roomID)
	if existRoom != nil {
		return existRoom.ID, nil
	}

	room := &domain.ChatRoom{
		ID:        roomID,
		RoomType:  domain.ChatRoomTypeDirect,
		Members:   []string{userID, friendID},
		CreatedAt: time.Now().Unix(),
	}
	if err := uc.roomRepo.CreateRoom(ctx, room); err != nil {
		// 對方可能同時開房，撞到時重查一次
		if existRoom, findErr := uc.roomRepo.FindByID(ctx, roomID); findErr == nil && existRoom != nil {
			return existRoom.ID, nil
		}
		return "", err
	}
	return room.ID, nil
}

// CreateCommunity 建立社群聊天室，建立者為 admin
func (uc *RoomUseCase) CreateCommunity(
	ctx context.Context,
	ownerID string,
	name string,
	joinMode domain.JoinMode,
	password string,
) (string, error) {
	if name == "" {
		return "", errors.New("community name required")
	}
	if joinMode == "" {
		joinMode = domain.JoinModeOpen
	}
	if joinMode == domain.JoinModePassword && password == "" {
		return "", errors.New("password required for password join mode")
	}

	room := &domain.ChatRoom{
		ID:        uuid.New().String(),
		RoomType:  domain.ChatRoomTypeCommunity,
		Name:      name,
		Members:   []string{ownerID},
		Admins:    []string{ownerID},
		JoinMode:  joinMode,
		Password:  password,
		CreatedAt: time.Now().Unix(),
	}

	if err := uc.roomRepo.CreateRoom(ctx, room); err != nil {
		return "", err
	}
	return room.ID, nil
}

// JoinCommunity join community room
func (uc *RoomUseCase) JoinCommunity(ctx context.Context, roomID, userID, password string) error {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return errors.New("room not found")
	}

	if room.RoomType != domain.ChatRoomTypeCommunity {
		return errors.New("not a community chat room")
	}

	switch room.JoinMode {
	case domain.JoinModeOpen:

	case domain.JoinModePassword:
		if password == "" || password != room.Password {
			return errors.New("invalid password")
		}

	default:
		return errors.New("unknown join mode")
	}

	return uc.roomRepo.AddMember(ctx, roomID, userID)
}

// ExitCommunity member exit community room
// 最後一位成員離開時刪除房間
func (uc *RoomUseCase) ExitCommunity(ctx context.Context, roomID, userID string) error {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return errors.New("room not found")
	}
	if room.RoomType != domain.ChatRoomTypeCommunity {
		return errors.New("not a community chat room")
	}
	if !pkg.Contains(room.Members, userID) {
		return errors.New("not a room member")
	}

	if err := uc.roomRepo.RemoveMember(ctx, roomID, userID); err != nil {
		return err
	}

	if len(room.Members) == 1 {
		return uc.roomRepo.DeleteRoom(ctx, roomID)
	}
	return nil
}

// ListRooms 列出 user 所屬的全部房間，回傳前清掉密碼
func (uc *RoomUseCase) ListRooms(ctx context.Context, userID string) ([]domain.ChatRoom, error) {
	rooms, err := uc.roomRepo.FindRoomsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		rooms[i].Password = ""
	}
	return rooms, nil
}
