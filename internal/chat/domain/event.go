package domain

// SocialEventType kafka 事件類型
type SocialEventType string

const (
	// EventDirectMessage direct 訊息，social service 用來更新好友排序
	EventDirectMessage SocialEventType = "direct_message"
)

// SocialEvent 發往 kafka 的跨服務事件
type SocialEvent struct {
	Type        SocialEventType `json:"type"`
	ActorID     string          `json:"actor_id"`
	RecipientID string          `json:"recipient_id,omitempty"`
	RoomID      string          `json:"room_id,omitempty"`
	Content     string          `json:"content,omitempty"`
	Timestamp   int64           `json:"timestamp"`
}
