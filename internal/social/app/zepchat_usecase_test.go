package app

import (
	"context"
	"testing"

	"gamer_social_service/internal/social/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestZepChatUseCase_Reply(t *testing.T) {
	t.Run("回覆後通知發問者", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		notifRepo := new(MockNotificationRepo)
		publisher := new(MockNotifyPublisher)
		uc := NewZepChatUseCase(zepRepo, notifRepo, publisher)

		zepRepo.On("GetByID", uint(3)).Return(&domain.ZepChat{
			ID: 3, Title: "how to beat the last boss", AuthorID: "asker",
		}, nil)
		zepRepo.On("CreateReply", mock.MatchedBy(func(r *domain.Reply) bool {
			return r.ZepChatID == 3 && r.AuthorID == "helper" && r.Content == "use fire"
		})).Return(nil)
		notifRepo.On("Create", mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == "asker" &&
				n.EventType == domain.EventZepChatReply &&
				n.Category == domain.CategoryZepChats
		})).Return(nil)
		publisher.On("PushToUser", mock.Anything, "asker", mock.Anything).Return(nil)

		reply, err := uc.Reply(context.Background(), 3, "helper", "use fire")

		assert.NoError(t, err)
		assert.Equal(t, "use fire", reply.Content)
		notifRepo.AssertExpectations(t)
	})

	t.Run("回自己的討論串不通知", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		notifRepo := new(MockNotificationRepo)
		uc := NewZepChatUseCase(zepRepo, notifRepo, new(MockNotifyPublisher))

		zepRepo.On("GetByID", uint(3)).Return(&domain.ZepChat{ID: 3, AuthorID: "asker"}, nil)
		zepRepo.On("CreateReply", mock.Anything).Return(nil)

		_, err := uc.Reply(context.Background(), 3, "asker", "nevermind, solved it")

		assert.NoError(t, err)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("空白內容被拒", func(t *testing.T) {
		uc := NewZepChatUseCase(new(MockZepChatRepo), new(MockNotificationRepo), new(MockNotifyPublisher))

		_, err := uc.Reply(context.Background(), 3, "helper", "   ")

		assert.Error(t, err)
	})
}

func TestZepChatUseCase_Vote(t *testing.T) {
	t.Run("第一次投 up vote", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		uc := NewZepChatUseCase(zepRepo, new(MockNotificationRepo), new(MockNotifyPublisher))

		zepRepo.On("GetByID", uint(1)).Return(&domain.ZepChat{ID: 1}, nil)
		zepRepo.On("Update", mock.MatchedBy(func(z *domain.ZepChat) bool {
			return z.UpVoters.Contains("user_1") && !z.DownVoters.Contains("user_1")
		})).Return(nil)

		result, err := uc.Vote(context.Background(), VoteTargetZepChat, 1, "user_1", domain.VoteUp)

		assert.NoError(t, err)
		assert.Equal(t, domain.OpUpVote, result.Op)
		assert.Equal(t, 1, result.Score)
	})

	t.Run("反方向投票會換邊", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		uc := NewZepChatUseCase(zepRepo, new(MockNotificationRepo), new(MockNotifyPublisher))

		zepRepo.On("GetByID", uint(1)).Return(&domain.ZepChat{
			ID:       1,
			UpVoters: domain.VoterList{{UserID: "user_1", ID: 1}},
		}, nil)
		zepRepo.On("Update", mock.MatchedBy(func(z *domain.ZepChat) bool {
			return !z.UpVoters.Contains("user_1") && z.DownVoters.Contains("user_1")
		})).Return(nil)

		result, err := uc.Vote(context.Background(), VoteTargetZepChat, 1, "user_1", domain.VoteDown)

		assert.NoError(t, err)
		assert.Equal(t, domain.OpDownVote, result.Op)
		assert.Equal(t, -1, result.Score)
	})

	t.Run("對回覆投票", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		uc := NewZepChatUseCase(zepRepo, new(MockNotificationRepo), new(MockNotifyPublisher))

		zepRepo.On("GetReply", uint(9)).Return(&domain.Reply{ID: 9, ZepChatID: 1}, nil)
		zepRepo.On("UpdateReply", mock.MatchedBy(func(r *domain.Reply) bool {
			return r.UpVoters.Contains("user_2")
		})).Return(nil)

		result, err := uc.Vote(context.Background(), VoteTargetReply, 9, "user_2", domain.VoteUp)

		assert.NoError(t, err)
		assert.Equal(t, domain.OpUpVote, result.Op)
	})

	t.Run("不明的投票目標", func(t *testing.T) {
		uc := NewZepChatUseCase(new(MockZepChatRepo), new(MockNotificationRepo), new(MockNotifyPublisher))

		_, err := uc.Vote(context.Background(), "comment", 1, "user_1", domain.VoteUp)

		assert.Error(t, err)
	})
}

func TestZepChatUseCase_AcceptReply(t *testing.T) {
	t.Run("發問者採納並通知回覆作者", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		notifRepo := new(MockNotificationRepo)
		publisher := new(MockNotifyPublisher)
		uc := NewZepChatUseCase(zepRepo, notifRepo, publisher)

		zepRepo.On("GetByID", uint(1)).Return(&domain.ZepChat{ID: 1, Title: "t", AuthorID: "asker"}, nil)
		zepRepo.On("GetReply", uint(9)).Return(&domain.Reply{ID: 9, ZepChatID: 1, AuthorID: "helper"}, nil)
		zepRepo.On("Update", mock.MatchedBy(func(z *domain.ZepChat) bool {
			return z.AcceptedReplyID != nil && *z.AcceptedReplyID == 9
		})).Return(nil)
		notifRepo.On("Create", mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == "helper" && n.EventType == domain.EventZepChatAccept
		})).Return(nil)
		publisher.On("PushToUser", mock.Anything, "helper", mock.Anything).Return(nil)

		err := uc.AcceptReply(context.Background(), 1, 9, "asker")

		assert.NoError(t, err)
		zepRepo.AssertExpectations(t)
	})

	t.Run("不是發問者不能採納", func(t *testing.T) {
		zepRepo := new(MockZepChatRepo)
		uc := NewZepChatUseCase(zepRepo, new(MockNotificationRepo), new(MockNotifyPublisher))

		zepRepo.On("GetByID", uint(1)).Return(&domain.ZepChat{ID: 1, AuthorID: "asker"}, nil)

		err := uc.AcceptReply(context.Background(), 1, 9, "helper")

		assert.EqualError(t, err, "only the author can accept a reply")
	})
}
