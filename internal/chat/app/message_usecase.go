package app

import (
	"context"
	"errors"
	"time"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/internal/chat/repository"
	"gamer_social_service/pkg"
	"gamer_social_service/pkg/logger"

	"github.com/google/uuid"
)

// SendMessageUseCase 負責處理聊天訊息
type SendMessageUseCase struct {
	roomRepo repository.RoomRepository
	msgRepo  repository.MessageRepository
	pubSub   repository.PubSub
	events   repository.EventProducer
}

// NewSendMessageUseCase init create message use case
func NewSendMessageUseCase(
	roomRepo repository.RoomRepository,
	msgRepo repository.MessageRepository,
	pubSub repository.PubSub,
	events repository.EventProducer,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		roomRepo: roomRepo,
		msgRepo:  msgRepo,
		pubSub:   pubSub,
		events:   events,
	}
}

// Execute send message
// 訊息只寫入一次、只發布一次，推播事件名稱依房間類型決定
func (uc *SendMessageUseCase) Execute(ctx context.Context, roomID, senderID, content string) (string, error) {
	// 1. 檢查房間是否存在且 sender 為成員
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", errors.New("room not found")
	}
	if !pkg.Contains(room.Members, senderID) {
		return "", errors.New("not a room member")
	}
	if content == "" {
		return "", errors.New("empty message")
	}

	// 2. 建立訊息，寫入當天的桶
	newMsg := domain.ChatMessage{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now().Unix(),
		ReadBy:    []string{senderID},
	}
	if err := uc.msgRepo.AppendMessage(ctx, roomID, newMsg); err != nil {
		return "", err
	}

	// 3. pubSub 推播到房間 channel，正在房間內的成員都會收到
	eventName := domain.EventNewMessage
	if room.RoomType == domain.ChatRoomTypeCommunity {
		eventName = domain.EventNewCommunityMessage
	}
	push := domain.PushEvent{
		Event:   eventName,
		RoomID:  roomID,
		Message: &newMsg,
	}
	if uc.pubSub != nil {
		if err := uc.pubSub.Publish(ctx, domain.RoomChannel(roomID), push); err != nil {
			logger.Log.Errorf("publish room event error: ", err)
		}
		// direct 訊息另外推到對方的個人 channel，對方不在房間內也會收到
		if room.RoomType == domain.ChatRoomTypeDirect {
			counterpart := room.Counterpart(senderID)
			if counterpart != "" {
				if err := uc.pubSub.Publish(ctx, domain.UserChannel(counterpart), push); err != nil {
					logger.Log.Errorf("publish user event error: ", err)
				}
			}
		}
	}

	// 4. direct 訊息發 kafka 事件，social service 據此更新好友排序
	if uc.events != nil && room.RoomType == domain.ChatRoomTypeDirect {
		event := domain.SocialEvent{
			Type:        domain.EventDirectMessage,
			ActorID:     senderID,
			RecipientID: room.Counterpart(senderID),
			RoomID:      roomID,
			Content:     content,
			Timestamp:   newMsg.Timestamp,
		}
		if err := uc.events.Send(ctx, event); err != nil {
			logger.Log.Errorf("send social event error: ", err)
		}
	}

	return newMsg.ID, nil
}

// MarkRead - 已讀
func (uc *SendMessageUseCase) MarkRead(ctx context.Context, roomID, messageID, userID string) error {
	return uc.msgRepo.MarkRead(ctx, roomID, messageID, userID)
}

// GetCountUnreadMessages - get member all room un read message
func (uc *SendMessageUseCase) GetCountUnreadMessages(ctx context.Context, userID string) ([]domain.RoomUnreadInfo, error) {
	rooms, err := uc.roomRepo.FindRoomsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	roomIDs := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}
	if len(roomIDs) == 0 {
		return nil, nil
	}
	return uc.msgRepo.CountUnreadMessagesByRoom(ctx, userID, roomIDs)
}

// GetHistory 拉取歷史訊息
// 未讀桶與 before 之前的訊息以 id 合併去重後回傳，升序
func (uc *SendMessageUseCase) GetHistory(ctx context.Context, roomID, userID string, before int64) ([]domain.ChatMessage, error) {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, errors.New("room not found")
	}
	if !pkg.Contains(room.Members, userID) {
		return nil, errors.New("not a room member")
	}

	if before <= 0 {
		before = time.Now().Unix()
	}

	messages, err := uc.msgRepo.FindMessagesBefore(ctx, roomID, before)
	if err != nil {
		return nil, err
	}

	var unread []domain.ChatMessage
	if bucket, err := uc.msgRepo.FindEarliestUnread(ctx, userID, roomID); err == nil && bucket != nil {
		unread = bucket.Messages
	}

	return domain.MergeMessages(messages, unread), nil
}

// GetHistorySince 斷線重連後補拉 since 之後的訊息
// 以日期桶撈回再依 timestamp 過濾，升序
func (uc *SendMessageUseCase) GetHistorySince(ctx context.Context, roomID, userID string, since int64) ([]domain.ChatMessage, error) {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, errors.New("room not found")
	}
	if !pkg.Contains(room.Members, userID) {
		return nil, errors.New("not a room member")
	}

	fromDate := time.Unix(since, 0).UTC().Format("2006-01-02")
	buckets, err := uc.msgRepo.FindBucketsSince(ctx, roomID, fromDate)
	if err != nil {
		return nil, err
	}

	var messages []domain.ChatMessage
	for _, bucket := range buckets {
		for _, msg := range bucket.Messages {
			if msg.Timestamp >= since {
				messages = append(messages, msg)
			}
		}
	}
	return domain.MergeMessages(messages, nil), nil
}
