package app

import (
	"context"

	memberdomain "gamer_social_service/internal/member/domain"
	"gamer_social_service/internal/social/domain"

	"github.com/stretchr/testify/mock"
)

// MockFriendRepo Mock FriendRepo
type MockFriendRepo struct {
	mock.Mock
}

// AutoMigrate moke auto migrate
func (m *MockFriendRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// Create moke create friendship
func (m *MockFriendRepo) Create(f *domain.Friendship) error {
	args := m.Called(f)
	return args.Error(0)
}

// GetByID moke get friendship by id
func (m *MockFriendRepo) GetByID(id uint) (*domain.Friendship, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Friendship), args.Error(1)
	}
	return nil, args.Error(1)
}

// FindBetween moke find friendship between members
func (m *MockFriendRepo) FindBetween(memberA, memberB string) (*domain.Friendship, error) {
	args := m.Called(memberA, memberB)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Friendship), args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByMember moke find friendships by member
func (m *MockFriendRepo) FindByMember(memberID string, status domain.FriendshipStatus) ([]domain.Friendship, error) {
	args := m.Called(memberID, status)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Friendship), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update moke update friendship
func (m *MockFriendRepo) Update(f *domain.Friendship) error {
	args := m.Called(f)
	return args.Error(0)
}

// Delete moke delete friendship
func (m *MockFriendRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockZepChatRepo Mock ZepChatRepo
type MockZepChatRepo struct {
	mock.Mock
}

// AutoMigrate moke auto migrate
func (m *MockZepChatRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// Create moke create zep chat
func (m *MockZepChatRepo) Create(z *domain.ZepChat) error {
	args := m.Called(z)
	return args.Error(0)
}

// GetByID moke get zep chat by id
func (m *MockZepChatRepo) GetByID(id uint) (*domain.ZepChat, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ZepChat), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update moke update zep chat
func (m *MockZepChatRepo) Update(z *domain.ZepChat) error {
	args := m.Called(z)
	return args.Error(0)
}

// Search moke search zep chats
func (m *MockZepChatRepo) Search(keyword string, limit, offset int) ([]domain.ZepChat, error) {
	args := m.Called(keyword, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ZepChat), args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateReply moke create reply
func (m *MockZepChatRepo) CreateReply(reply *domain.Reply) error {
	args := m.Called(reply)
	return args.Error(0)
}

// GetReply moke get reply by id
func (m *MockZepChatRepo) GetReply(id uint) (*domain.Reply, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Reply), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateReply moke update reply
func (m *MockZepChatRepo) UpdateReply(reply *domain.Reply) error {
	args := m.Called(reply)
	return args.Error(0)
}

// MockNotificationRepo Mock NotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

// AutoMigrate moke auto migrate
func (m *MockNotificationRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// Create moke create notification
func (m *MockNotificationRepo) Create(n *domain.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

// GetByID moke get notification by id
func (m *MockNotificationRepo) GetByID(id uint) (*domain.Notification, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByRecipient moke list notifications
func (m *MockNotificationRepo) ListByRecipient(recipientID string) ([]domain.Notification, error) {
	args := m.Called(recipientID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete moke delete notification
func (m *MockNotificationRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// DeleteByRecipient moke delete all notifications
func (m *MockNotificationRepo) DeleteByRecipient(recipientID string) error {
	args := m.Called(recipientID)
	return args.Error(0)
}

// MockTicketRepo Mock TicketRepo
type MockTicketRepo struct {
	mock.Mock
}

// AutoMigrate moke auto migrate
func (m *MockTicketRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// Create moke create ticket
func (m *MockTicketRepo) Create(t *domain.SupportTicket) error {
	args := m.Called(t)
	return args.Error(0)
}

// GetByID moke get ticket by id
func (m *MockTicketRepo) GetByID(id uint) (*domain.SupportTicket, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.SupportTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update moke update ticket
func (m *MockTicketRepo) Update(t *domain.SupportTicket) error {
	args := m.Called(t)
	return args.Error(0)
}

// ListByReporter moke list tickets by reporter
func (m *MockTicketRepo) ListByReporter(reporterID string) ([]domain.SupportTicket, error) {
	args := m.Called(reporterID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SupportTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByStatus moke list tickets by status
func (m *MockTicketRepo) ListByStatus(status domain.TicketStatus) ([]domain.SupportTicket, error) {
	args := m.Called(status)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SupportTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateReply moke create ticket reply
func (m *MockTicketRepo) CreateReply(reply *domain.TicketReply) error {
	args := m.Called(reply)
	return args.Error(0)
}

// MockNotifyPublisher Mock NotifyPublisher
type MockNotifyPublisher struct {
	mock.Mock
}

// PushToUser moke push notification
func (m *MockNotifyPublisher) PushToUser(ctx context.Context, userID string, n domain.Notification) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}

// MockEventConsumer Mock EventConsumer
type MockEventConsumer struct {
	mock.Mock
}

// Read moke read event
func (m *MockEventConsumer) Read(ctx context.Context) (domain.NotificationEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.NotificationEvent), args.Error(1)
}

// MockMemberDirectory Mock member repository
type MockMemberDirectory struct {
	mock.Mock
}

// CreateUser moke create user
func (m *MockMemberDirectory) CreateUser(ctx context.Context, member *memberdomain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// UpdateMemberStatus moke update member status
func (m *MockMemberDirectory) UpdateMemberStatus(ctx context.Context, member *memberdomain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// UpdateProfile moke update profile
func (m *MockMemberDirectory) UpdateProfile(ctx context.Context, member *memberdomain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// FindByMember moke find member
func (m *MockMemberDirectory) FindByMember(ctx context.Context, memberQuery *memberdomain.MemberQuery) (*memberdomain.Member, error) {
	args := m.Called(ctx, memberQuery)
	if args.Get(0) != nil {
		return args.Get(0).(*memberdomain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchMembers moke search members
func (m *MockMemberDirectory) SearchMembers(ctx context.Context, keyword string, limit int) ([]memberdomain.Member, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]memberdomain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListMembers moke list members
func (m *MockMemberDirectory) ListMembers(ctx context.Context, limit, offset int) ([]memberdomain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]memberdomain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}
