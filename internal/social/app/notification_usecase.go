package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/pkg/logger"
)

// NotificationUseCase - 通知查詢與好友邀請的處理
type NotificationUseCase struct {
	notifRepo repository.NotificationRepo
	friendUC  *FriendUseCase
	consumer  repository.EventConsumer
	publisher repository.NotifyPublisher
}

// NewNotificationUseCase init notification use case
func NewNotificationUseCase(
	notifRepo repository.NotificationRepo,
	friendUC *FriendUseCase,
	consumer repository.EventConsumer,
	publisher repository.NotifyPublisher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notifRepo: notifRepo,
		friendUC:  friendUC,
		consumer:  consumer,
		publisher: publisher,
	}
}

// List 用戶的通知依分類分組，四個分類 key 都會在
func (uc *NotificationUseCase) List(ctx context.Context, userID string) (map[domain.NotificationCategory][]domain.Notification, error) {
	list, err := uc.notifRepo.ListByRecipient(userID)
	if err != nil {
		return nil, err
	}
	return domain.Partition(list), nil
}

// AcceptFriendRequest 從通知直接接受好友邀請，成功後通知一併刪掉
func (uc *NotificationUseCase) AcceptFriendRequest(ctx context.Context, userID string, notificationID uint) error {
	n, friendshipID, err := uc.friendRequestOf(userID, notificationID)
	if err != nil {
		return err
	}
	if err := uc.friendUC.Accept(ctx, userID, friendshipID); err != nil {
		return err
	}
	return uc.notifRepo.Delete(n.ID)
}

// RejectFriendRequest 從通知拒絕好友邀請
func (uc *NotificationUseCase) RejectFriendRequest(ctx context.Context, userID string, notificationID uint) error {
	n, friendshipID, err := uc.friendRequestOf(userID, notificationID)
	if err != nil {
		return err
	}
	if err := uc.friendUC.Reject(ctx, userID, friendshipID); err != nil {
		return err
	}
	return uc.notifRepo.Delete(n.ID)
}

// Dismiss 刪掉單一通知
func (uc *NotificationUseCase) Dismiss(ctx context.Context, userID string, notificationID uint) error {
	n, err := uc.notifRepo.GetByID(notificationID)
	if err != nil {
		return errors.New("notification not found")
	}
	if n.RecipientID != userID {
		return errors.New("not the recipient")
	}
	return uc.notifRepo.Delete(n.ID)
}

// ClearAll 清空用戶全部通知
func (uc *NotificationUseCase) ClearAll(ctx context.Context, userID string) error {
	return uc.notifRepo.DeleteByRecipient(userID)
}

func (uc *NotificationUseCase) friendRequestOf(userID string, notificationID uint) (*domain.Notification, uint, error) {
	n, err := uc.notifRepo.GetByID(notificationID)
	if err != nil {
		return nil, 0, errors.New("notification not found")
	}
	if n.RecipientID != userID {
		return nil, 0, errors.New("not the recipient")
	}
	if n.EventType != domain.EventFriendRequest {
		return nil, 0, errors.New("not a friend request notification")
	}
	friendshipID, err := strconv.ParseUint(n.RefID, 10, 32)
	if err != nil {
		return nil, 0, errors.New("broken notification ref")
	}
	return n, uint(friendshipID), nil
}

// StartConsumer 消費 chat service 的跨服務事件，直到 ctx 結束
// direct 訊息只更新好友排序，其餘事件落通知並推播
func (uc *NotificationUseCase) StartConsumer(ctx context.Context) {
	logger.Log.Info("social event consumer started")
	for {
		event, err := uc.consumer.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Log.Info("social event consumer stopped")
				return
			}
			logger.Log.Errorf("read social event failed: ", err)
			time.Sleep(time.Second)
			continue
		}
		if err := uc.handleEvent(ctx, event); err != nil {
			logger.Log.Errorf("handle social event failed: ", err)
		}
	}
}

func (uc *NotificationUseCase) handleEvent(ctx context.Context, event domain.NotificationEvent) error {
	switch event.Type {
	case domain.EventDirectMessage:
		return uc.friendUC.RecordMessage(ctx, event.ActorID, event.RecipientID, event.Content, event.Timestamp)
	default:
		if event.RecipientID == "" {
			return nil
		}
		n := domain.Notification{
			RecipientID: event.RecipientID,
			Category:    domain.Categorize(event.Type),
			EventType:   event.Type,
			ActorID:     event.ActorID,
			Content:     event.Content,
			RefID:       event.RefID,
			CreatedAt:   time.Now(),
		}
		if err := uc.notifRepo.Create(&n); err != nil {
			return err
		}
		if err := uc.publisher.PushToUser(ctx, n.RecipientID, n); err != nil {
			logger.Log.Errorf("push notification failed: ", err)
		}
		return nil
	}
}
