package domain

import (
	"strings"
	"time"
)

// NotificationCategory 通知分類，前端依分類分頁顯示
type NotificationCategory string

const (
	// CategoryFriends 好友相關通知
	CategoryFriends NotificationCategory = "friends"
	// CategoryCommunity 社群相關通知
	CategoryCommunity NotificationCategory = "community"
	// CategoryZepChats 問答相關通知
	CategoryZepChats NotificationCategory = "zepchats"
	// CategoryOthers 其他通知
	CategoryOthers NotificationCategory = "others"
)

// 跨服務事件類型
const (
	// EventFriendRequest 好友邀請
	EventFriendRequest = "friend_request"
	// EventFriendAccept 好友邀請被接受
	EventFriendAccept = "friend_accept"
	// EventDirectMessage direct 訊息，只更新好友排序不落通知
	EventDirectMessage = "direct_message"
	// EventCommunityInvite 社群邀請
	EventCommunityInvite = "community_invite"
	// EventZepChatReply 問答回覆
	EventZepChatReply = "zepchat_reply"
	// EventZepChatAccept 回覆被採納
	EventZepChatAccept = "zepchat_accept"
)

// Categorize 事件類型對應通知分類，未知類型歸在 others
func Categorize(eventType string) NotificationCategory {
	switch {
	case strings.HasPrefix(eventType, "friend_"):
		return CategoryFriends
	case strings.HasPrefix(eventType, "community_"):
		return CategoryCommunity
	case strings.HasPrefix(eventType, "zepchat_"):
		return CategoryZepChats
	}
	return CategoryOthers
}

// Notification 存儲的通知
type Notification struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	RecipientID string               `gorm:"index;not null" json:"recipient_id"`
	Category    NotificationCategory `gorm:"index" json:"category"`
	EventType   string               `json:"event_type"`
	ActorID     string               `json:"actor_id"`
	Content     string               `json:"content"`
	RefID       string               `json:"ref_id,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Partition 將通知依分類分組
// 四個分類 key 一定都存在，沒通知的分類是空陣列
func Partition(list []Notification) map[NotificationCategory][]Notification {
	out := map[NotificationCategory][]Notification{
		CategoryFriends:   {},
		CategoryCommunity: {},
		CategoryZepChats:  {},
		CategoryOthers:    {},
	}
	for _, n := range list {
		category := n.Category
		if _, ok := out[category]; !ok {
			category = CategoryOthers
		}
		out[category] = append(out[category], n)
	}
	return out
}

// NotificationEvent kafka 事件 payload，與 chat service 發出的格式一致
type NotificationEvent struct {
	Type        string `json:"type"`
	ActorID     string `json:"actor_id"`
	RecipientID string `json:"recipient_id,omitempty"`
	RoomID      string `json:"room_id,omitempty"`
	Content     string `json:"content,omitempty"`
	RefID       string `json:"ref_id,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}
