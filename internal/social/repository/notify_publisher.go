package repository

import (
	"context"
	"encoding/json"

	chatdomain "gamer_social_service/internal/chat/domain"
	"gamer_social_service/internal/social/domain"

	"github.com/go-redis/redis/v8"
)

// NotifyPublisher 將新通知推到用戶的即時 channel
// chat service 的 websocket 有訂閱用戶 channel，在線的人會立刻收到
type NotifyPublisher interface {
	PushToUser(ctx context.Context, userID string, n domain.Notification) error
}

type redisNotifyPublisher struct {
	client *redis.Client
}

// NewRedisNotifyPublisher create NotifyPublisher
func NewRedisNotifyPublisher(client *redis.Client) NotifyPublisher {
	return &redisNotifyPublisher{client: client}
}

// PushToUser 發布 newNotification 事件到 chat:user:<id>
func (p *redisNotifyPublisher) PushToUser(ctx context.Context, userID string, n domain.Notification) error {
	event := chatdomain.PushEvent{
		Event: chatdomain.EventNewNotification,
		Payload: map[string]interface{}{
			"id":         n.ID,
			"category":   string(n.Category),
			"event_type": n.EventType,
			"actor_id":   n.ActorID,
			"content":    n.Content,
			"ref_id":     n.RefID,
			"created_at": n.CreatedAt.Unix(),
		},
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, chatdomain.UserChannel(userID), data).Err()
}
