package domain

import (
	"sort"
	"time"
)

// FriendshipStatus 好友關係狀態
type FriendshipStatus string

const (
	// FriendshipPending 等待對方接受
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipAccepted 已成為好友
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship 好友關係，requester 發出邀請，addressee 接受後成立
// 最後一則 direct 訊息冗餘存在關係上，列表排序不用查 chat service
type Friendship struct {
	ID                   uint   `gorm:"primaryKey"`
	RequesterID          string `gorm:"index;not null"`
	AddresseeID          string `gorm:"index;not null"`
	Status               FriendshipStatus
	LastMessageContent   string
	LastMessageTimestamp int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CounterpartOf 關係中另一位成員，不在關係內回空字串
func (f *Friendship) CounterpartOf(userID string) string {
	switch userID {
	case f.RequesterID:
		return f.AddresseeID
	case f.AddresseeID:
		return f.RequesterID
	}
	return ""
}

// Involves check user in friendship
func (f *Friendship) Involves(userID string) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

// LastMessage 好友列表上顯示的最後一則訊息
type LastMessage struct {
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// FriendEntry 好友列表的一列
type FriendEntry struct {
	MemberID       string       `json:"member_id"`
	UserName       string       `json:"user_name,omitempty"`
	DisplayName    string       `json:"display_name,omitempty"`
	ProfilePicture string       `json:"profile_picture,omitempty"`
	LastMessage    *LastMessage `json:"last_message,omitempty"`
}

// SortByRecency 依最後訊息時間降序排列好友
// 沒有訊息的好友排在最後，時間相同維持原本順序
func SortByRecency(entries []FriendEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := entries[i].LastMessage, entries[j].LastMessage
		if li == nil {
			return false
		}
		if lj == nil {
			return true
		}
		return li.Timestamp > lj.Timestamp
	})
}
