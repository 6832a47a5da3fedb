package domain

import "sort"

// MessageBucket 表示某個聊天室某天的訊息存儲
type MessageBucket struct {
	RoomID   string        `bson:"room_id" json:"room_id"`
	Date     string        `bson:"date" json:"date"` // 格式："2025-01-23"
	Messages []ChatMessage `bson:"messages" json:"messages"`
}

// ChatMessage 表示一則聊天訊息
type ChatMessage struct {
	ID        string   `bson:"id" json:"id"`
	SenderID  string   `bson:"sender_id" json:"sender_id"`
	Content   string   `bson:"content" json:"content"`
	Timestamp int64    `bson:"timestamp" json:"timestamp"`
	ReadBy    []string `bson:"read_by,omitempty" json:"read_by,omitempty"`
}

// RoomUnreadInfo definition unread by room
type RoomUnreadInfo struct {
	RoomID              string `bson:"_id" json:"room_id"`
	UnreadCount         int    `bson:"unread_count" json:"unread_count"`
	LastUnreadTimeStamp int64  `bson:"last_unread_timestamp" json:"last_unread_timestamp"`
}

// MergeMessages 以 message id 合併多個來源的訊息
// REST 拉取與 pubsub 推播可能送到同一則訊息，用 id 去重後依 timestamp 升序排列
// 相同 timestamp 保持先到先排，之外不做任何重排
func MergeMessages(sources ...[]ChatMessage) []ChatMessage {
	seen := make(map[string]struct{})
	merged := make([]ChatMessage, 0)

	for _, src := range sources {
		for _, msg := range src {
			if _, ok := seen[msg.ID]; ok {
				continue
			}
			seen[msg.ID] = struct{}{}
			merged = append(merged, msg)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp < merged[j].Timestamp
	})
	return merged
}
