package repository

import (
	"context"
	"encoding/json"

	"gamer_social_service/internal/social/domain"

	"github.com/segmentio/kafka-go"
)

// EventConsumer 讀取 chat service 發出的跨服務事件
type EventConsumer interface {
	Read(ctx context.Context) (domain.NotificationEvent, error)
}

type kafkaEventConsumer struct {
	reader *kafka.Reader
}

// NewKafkaEventConsumer create EventConsumer
func NewKafkaEventConsumer(reader *kafka.Reader) EventConsumer {
	return &kafkaEventConsumer{reader: reader}
}

// Read 阻塞到讀到下一筆事件，consumer group 會自動 commit offset
func (c *kafkaEventConsumer) Read(ctx context.Context) (domain.NotificationEvent, error) {
	var event domain.NotificationEvent
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return event, err
	}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, err
	}
	return event, nil
}
