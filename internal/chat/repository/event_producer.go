package repository

import (
	"context"
	"encoding/json"

	"gamer_social_service/internal/chat/domain"

	"github.com/segmentio/kafka-go"
)

// EventProducer 跨服務事件發送介面
type EventProducer interface {
	Send(ctx context.Context, event domain.SocialEvent) error
}

type kafkaEventProducer struct {
	writer *kafka.Writer
}

// NewKafkaEventProducer create kafka EventProducer
func NewKafkaEventProducer(writer *kafka.Writer) EventProducer {
	return &kafkaEventProducer{writer: writer}
}

// Send 序列化後發往 kafka，key 用 recipient 確保同一位用戶的事件有序
func (p *kafkaEventProducer) Send(ctx context.Context, event domain.SocialEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.RecipientID
	if key == "" {
		key = event.RoomID
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}
