package app

import (
	"context"

	"gamer_social_service/internal/chat/domain"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepository Mock RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

// CreateRoom moke create room
func (m *MockRoomRepository) CreateRoom(ctx context.Context, room *domain.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

// FindByID moke find room by room id
func (m *MockRoomRepository) FindByID(ctx context.Context, roomID string) (*domain.ChatRoom, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChatRoom), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateRoom moke update room
func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room *domain.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

// FindRoomsByMember moke find rooms by member
func (m *MockRoomRepository) FindRoomsByMember(ctx context.Context, userID string) ([]domain.ChatRoom, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatRoom), args.Error(1)
	}
	return nil, args.Error(1)
}

// AddMember moke add member
func (m *MockRoomRepository) AddMember(ctx context.Context, roomID, userID string) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

// RemoveMember moke remove member
func (m *MockRoomRepository) RemoveMember(ctx context.Context, roomID, userID string) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

// DeleteRoom moke delete room
func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// MockMessageRepository Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// AppendMessage moke append msg
func (m *MockMessageRepository) AppendMessage(ctx context.Context, roomID string, msg domain.ChatMessage) error {
	args := m.Called(ctx, roomID, msg)
	return args.Error(0)
}

// FindBucketsSince moke find buckets since date
func (m *MockMessageRepository) FindBucketsSince(ctx context.Context, roomID, fromDate string) ([]domain.MessageBucket, error) {
	args := m.Called(ctx, roomID, fromDate)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.MessageBucket), args.Error(1)
	}
	return nil, args.Error(1)
}

// MarkRead moke mark read
func (m *MockMessageRepository) MarkRead(ctx context.Context, roomID, messageID, userID string) error {
	args := m.Called(ctx, roomID, messageID, userID)
	return args.Error(0)
}

// FindEarliestUnread moke find earliest unread msg
func (m *MockMessageRepository) FindEarliestUnread(ctx context.Context, userID, roomID string) (*domain.MessageBucket, error) {
	args := m.Called(ctx, userID, roomID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.MessageBucket), args.Error(1)
	}
	return nil, args.Error(1)
}

// FindMessagesBefore moke find before msg
func (m *MockMessageRepository) FindMessagesBefore(ctx context.Context, roomID string, beforeTimestamp int64) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, roomID, beforeTimestamp)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// CountUnreadMessagesByRoom moke get count unread by user id
func (m *MockMessageRepository) CountUnreadMessagesByRoom(ctx context.Context, userID string, roomIDs []string) ([]domain.RoomUnreadInfo, error) {
	args := m.Called(ctx, userID, roomIDs)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.RoomUnreadInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPubSub Mock PubSub
type MockPubSub struct {
	mock.Mock
}

// Publish moke publisher
func (m *MockPubSub) Publish(ctx context.Context, channel string, event domain.PushEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}

// Subscribe moke subscriber
func (m *MockPubSub) Subscribe(ctx context.Context, channel string, handler func(event domain.PushEvent)) error {
	args := m.Called(channel, handler)
	return args.Error(0)
}

// MockEventProducer Mock EventProducer
type MockEventProducer struct {
	mock.Mock
}

// Send moke send social event
func (m *MockEventProducer) Send(ctx context.Context, event domain.SocialEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
