package app

import (
	"context"
	"testing"

	"gamer_social_service/internal/social/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationUseCase_List(t *testing.T) {
	notifRepo := new(MockNotificationRepo)
	uc := NewNotificationUseCase(notifRepo, nil, nil, nil)

	notifRepo.On("ListByRecipient", "me").Return([]domain.Notification{
		{ID: 1, Category: domain.CategoryFriends},
		{ID: 2, Category: domain.CategoryZepChats},
	}, nil)

	out, err := uc.List(context.Background(), "me")

	assert.NoError(t, err)
	assert.Len(t, out[domain.CategoryFriends], 1)
	assert.Len(t, out[domain.CategoryZepChats], 1)
	assert.Empty(t, out[domain.CategoryCommunity])
	assert.Empty(t, out[domain.CategoryOthers])
}

func TestNotificationUseCase_AcceptFriendRequest(t *testing.T) {
	t.Run("接受後通知會刪掉", func(t *testing.T) {
		friendRepo := new(MockFriendRepo)
		notifRepo := new(MockNotificationRepo)
		publisher := new(MockNotifyPublisher)
		friendUC := NewFriendUseCase(friendRepo, notifRepo, new(MockMemberDirectory), publisher)
		uc := NewNotificationUseCase(notifRepo, friendUC, nil, publisher)

		notifRepo.On("GetByID", uint(5)).Return(&domain.Notification{
			ID: 5, RecipientID: "user_b", EventType: domain.EventFriendRequest, RefID: "7",
		}, nil)
		friendRepo.On("GetByID", uint(7)).Return(&domain.Friendship{
			ID: 7, RequesterID: "user_a", AddresseeID: "user_b", Status: domain.FriendshipPending,
		}, nil)
		friendRepo.On("Update", mock.Anything).Return(nil)
		notifRepo.On("Create", mock.Anything).Return(nil)
		publisher.On("PushToUser", mock.Anything, "user_a", mock.Anything).Return(nil)
		notifRepo.On("Delete", uint(5)).Return(nil)

		err := uc.AcceptFriendRequest(context.Background(), "user_b", 5)

		assert.NoError(t, err)
		notifRepo.AssertCalled(t, "Delete", uint(5))
	})

	t.Run("別人的通知不能操作", func(t *testing.T) {
		notifRepo := new(MockNotificationRepo)
		uc := NewNotificationUseCase(notifRepo, nil, nil, nil)

		notifRepo.On("GetByID", uint(5)).Return(&domain.Notification{
			ID: 5, RecipientID: "user_b", EventType: domain.EventFriendRequest, RefID: "7",
		}, nil)

		err := uc.AcceptFriendRequest(context.Background(), "user_c", 5)

		assert.EqualError(t, err, "not the recipient")
	})

	t.Run("不是好友邀請的通知不能接受", func(t *testing.T) {
		notifRepo := new(MockNotificationRepo)
		uc := NewNotificationUseCase(notifRepo, nil, nil, nil)

		notifRepo.On("GetByID", uint(5)).Return(&domain.Notification{
			ID: 5, RecipientID: "user_b", EventType: domain.EventZepChatReply,
		}, nil)

		err := uc.AcceptFriendRequest(context.Background(), "user_b", 5)

		assert.EqualError(t, err, "not a friend request notification")
	})

	t.Run("接受失敗時通知要保留", func(t *testing.T) {
		friendRepo := new(MockFriendRepo)
		notifRepo := new(MockNotificationRepo)
		friendUC := NewFriendUseCase(friendRepo, notifRepo, new(MockMemberDirectory), new(MockNotifyPublisher))
		uc := NewNotificationUseCase(notifRepo, friendUC, nil, nil)

		notifRepo.On("GetByID", uint(5)).Return(&domain.Notification{
			ID: 5, RecipientID: "user_b", EventType: domain.EventFriendRequest, RefID: "7",
		}, nil)
		// 邀請已經被撤回
		friendRepo.On("GetByID", uint(7)).Return(nil, assert.AnError)

		err := uc.AcceptFriendRequest(context.Background(), "user_b", 5)

		assert.Error(t, err)
		notifRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestNotificationUseCase_HandleEvent(t *testing.T) {
	t.Run("direct 訊息只更新好友排序不落通知", func(t *testing.T) {
		friendRepo := new(MockFriendRepo)
		notifRepo := new(MockNotificationRepo)
		friendUC := NewFriendUseCase(friendRepo, notifRepo, new(MockMemberDirectory), new(MockNotifyPublisher))
		uc := NewNotificationUseCase(notifRepo, friendUC, nil, new(MockNotifyPublisher))

		friendRepo.On("FindBetween", "user_a", "user_b").Return(&domain.Friendship{
			Status: domain.FriendshipAccepted,
		}, nil)
		friendRepo.On("Update", mock.MatchedBy(func(f *domain.Friendship) bool {
			return f.LastMessageContent == "hello" && f.LastMessageTimestamp == 900
		})).Return(nil)

		err := uc.handleEvent(context.Background(), domain.NotificationEvent{
			Type:        domain.EventDirectMessage,
			ActorID:     "user_a",
			RecipientID: "user_b",
			Content:     "hello",
			Timestamp:   900,
		})

		assert.NoError(t, err)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("其餘事件落通知並推播", func(t *testing.T) {
		notifRepo := new(MockNotificationRepo)
		publisher := new(MockNotifyPublisher)
		uc := NewNotificationUseCase(notifRepo, nil, nil, publisher)

		notifRepo.On("Create", mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == "user_b" && n.Category == domain.CategoryCommunity
		})).Return(nil)
		publisher.On("PushToUser", mock.Anything, "user_b", mock.Anything).Return(nil)

		err := uc.handleEvent(context.Background(), domain.NotificationEvent{
			Type:        domain.EventCommunityInvite,
			ActorID:     "user_a",
			RecipientID: "user_b",
		})

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("沒有收件者的事件直接略過", func(t *testing.T) {
		notifRepo := new(MockNotificationRepo)
		uc := NewNotificationUseCase(notifRepo, nil, nil, nil)

		err := uc.handleEvent(context.Background(), domain.NotificationEvent{Type: "community_message"})

		assert.NoError(t, err)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}
