package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	memberdomain "gamer_social_service/internal/member/domain"
	memberrepo "gamer_social_service/internal/member/repository"
	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/pkg/logger"
)

// FriendUseCase - 好友邀請與好友列表
type FriendUseCase struct {
	friendRepo repository.FriendRepo
	notifRepo  repository.NotificationRepo
	memberRepo memberrepo.MemberRepository
	publisher  repository.NotifyPublisher
}

// NewFriendUseCase init friend use case
func NewFriendUseCase(
	friendRepo repository.FriendRepo,
	notifRepo repository.NotificationRepo,
	memberRepo memberrepo.MemberRepository,
	publisher repository.NotifyPublisher,
) *FriendUseCase {
	return &FriendUseCase{
		friendRepo: friendRepo,
		notifRepo:  notifRepo,
		memberRepo: memberRepo,
		publisher:  publisher,
	}
}

// SendRequest 發好友邀請，對方會收到 friends 分類的通知
func (uc *FriendUseCase) SendRequest(ctx context.Context, requesterID, addresseeID string) error {
	if addresseeID == "" || addresseeID == requesterID {
		return errors.New("invalid addressee")
	}

	target, err := uc.memberRepo.FindByMember(ctx, &memberdomain.MemberQuery{MemberID: &addresseeID})
	if err != nil || target == nil {
		return errors.New("member not found")
	}

	exist, err := uc.friendRepo.FindBetween(requesterID, addresseeID)
	if err != nil {
		return err
	}
	if exist != nil {
		if exist.Status == domain.FriendshipAccepted {
			return errors.New("already friends")
		}
		return errors.New("request already pending")
	}

	friendship := &domain.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      domain.FriendshipPending,
	}
	if err := uc.friendRepo.Create(friendship); err != nil {
		return err
	}

	uc.notify(ctx, domain.Notification{
		RecipientID: addresseeID,
		EventType:   domain.EventFriendRequest,
		ActorID:     requesterID,
		Content:     "sent you a friend request",
		RefID:       strconv.FormatUint(uint64(friendship.ID), 10),
	})
	return nil
}

// Accept 接受好友邀請，只有被邀請方可以操作
func (uc *FriendUseCase) Accept(ctx context.Context, userID string, friendshipID uint) error {
	friendship, err := uc.friendRepo.GetByID(friendshipID)
	if err != nil {
		return errors.New("friend request not found")
	}
	if friendship.AddresseeID != userID {
		return errors.New("not the addressee")
	}
	if friendship.Status != domain.FriendshipPending {
		return errors.New("request already handled")
	}

	friendship.Status = domain.FriendshipAccepted
	if err := uc.friendRepo.Update(friendship); err != nil {
		return err
	}

	uc.notify(ctx, domain.Notification{
		RecipientID: friendship.RequesterID,
		EventType:   domain.EventFriendAccept,
		ActorID:     userID,
		Content:     "accepted your friend request",
		RefID:       strconv.FormatUint(uint64(friendship.ID), 10),
	})
	return nil
}

// Reject 拒絕好友邀請，直接刪掉關係，邀請方不會收到通知
func (uc *FriendUseCase) Reject(ctx context.Context, userID string, friendshipID uint) error {
	friendship, err := uc.friendRepo.GetByID(friendshipID)
	if err != nil {
		return errors.New("friend request not found")
	}
	if friendship.AddresseeID != userID {
		return errors.New("not the addressee")
	}
	if friendship.Status != domain.FriendshipPending {
		return errors.New("request already handled")
	}
	return uc.friendRepo.Delete(friendship.ID)
}

// RemoveFriend 解除好友關係
func (uc *FriendUseCase) RemoveFriend(ctx context.Context, userID, friendID string) error {
	friendship, err := uc.friendRepo.FindBetween(userID, friendID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != domain.FriendshipAccepted {
		return errors.New("not friends")
	}
	return uc.friendRepo.Delete(friendship.ID)
}

// ListRequests 等待 user 處理的邀請
func (uc *FriendUseCase) ListRequests(ctx context.Context, userID string) ([]domain.Friendship, error) {
	all, err := uc.friendRepo.FindByMember(userID, domain.FriendshipPending)
	if err != nil {
		return nil, err
	}
	incoming := make([]domain.Friendship, 0, len(all))
	for _, f := range all {
		if f.AddresseeID == userID {
			incoming = append(incoming, f)
		}
	}
	return incoming, nil
}

// ListFriends 好友列表，依最後一則 direct 訊息時間新到舊排序
// 沒聊過天的好友排在最後
func (uc *FriendUseCase) ListFriends(ctx context.Context, userID string) ([]domain.FriendEntry, error) {
	friendships, err := uc.friendRepo.FindByMember(userID, domain.FriendshipAccepted)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		counterpart := f.CounterpartOf(userID)
		if counterpart == "" {
			continue
		}
		entry := domain.FriendEntry{MemberID: counterpart}
		if f.LastMessageTimestamp > 0 {
			entry.LastMessage = &domain.LastMessage{
				Content:   f.LastMessageContent,
				Timestamp: f.LastMessageTimestamp,
			}
		}
		// 撈不到個人資料只留 member id，不擋整個列表
		if member, err := uc.memberRepo.FindByMember(ctx, &memberdomain.MemberQuery{MemberID: &counterpart}); err == nil && member != nil {
			entry.UserName = member.UserName
			entry.DisplayName = member.DisplayName
			entry.ProfilePicture = member.ProfilePicture
		}
		entries = append(entries, entry)
	}

	domain.SortByRecency(entries)
	return entries, nil
}

// RecordMessage direct 訊息事件進來時更新好友排序用的最後訊息
// 不是好友的訊息直接略過
func (uc *FriendUseCase) RecordMessage(ctx context.Context, actorID, recipientID, content string, timestamp int64) error {
	friendship, err := uc.friendRepo.FindBetween(actorID, recipientID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != domain.FriendshipAccepted {
		return nil
	}
	// 事件可能亂序，舊訊息不能蓋掉新訊息
	if timestamp < friendship.LastMessageTimestamp {
		return nil
	}
	friendship.LastMessageContent = content
	friendship.LastMessageTimestamp = timestamp
	return uc.friendRepo.Update(friendship)
}

// notify 落一筆通知並推播給在線的收件者，失敗只記 log
func (uc *FriendUseCase) notify(ctx context.Context, n domain.Notification) {
	n.Category = domain.Categorize(n.EventType)
	n.CreatedAt = time.Now()
	if err := uc.notifRepo.Create(&n); err != nil {
		logger.Log.Errorf("create notification failed: ", err)
		return
	}
	if err := uc.publisher.PushToUser(ctx, n.RecipientID, n); err != nil {
		logger.Log.Errorf("push notification failed: ", err)
	}
}
