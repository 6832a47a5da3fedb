package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// PubSub definition push event pub/sub
type PubSub interface {
	Publish(ctx context.Context, channel string, event domain.PushEvent) error
	Subscribe(ctx context.Context, channel string, handler func(event domain.PushEvent)) error
}

// RedisPubSub definition redis pub/sub
type RedisPubSub struct {
	client *redis.Client
}

// NewRedisPubSub create RedisPubSub
func NewRedisPubSub(client *redis.Client) *RedisPubSub {
	return &RedisPubSub{client: client}
}

// Publish 將 event 序列化後，發布到指定 channel
func (r *RedisPubSub) Publish(ctx context.Context, channel string, event domain.PushEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Subscribe 訂閱 channel，收到訊息後呼叫 handler 處理
// ctx 取消時關閉訂閱
func (r *RedisPubSub) Subscribe(ctx context.Context, channel string, handler func(event domain.PushEvent)) error {
	sub := r.client.Subscribe(ctx, channel)
	go func() {
		ch := sub.Channel()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}

				var event domain.PushEvent
				if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
					logger.Log.Errorf("failed to unmarshal push event: ", err)
					continue
				}
				handler(event)
			case <-ctx.Done():
				logger.Log.Info(fmt.Sprintf("%s , sub close", channel))
				sub.Close()
				return
			}
		}
	}()
	return nil
}
