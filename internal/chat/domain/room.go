package domain

import "strings"

// ChatRoomType definition chat room type
type ChatRoomType string

const (
	//ChatRoomTypeDirect definition chat room 1 on 1
	ChatRoomTypeDirect ChatRoomType = "direct" // 1對1
	//ChatRoomTypeCommunity definition community chat room
	ChatRoomTypeCommunity ChatRoomType = "community" // 社群
)

// JoinMode 決定加入社群條件
type JoinMode string

const (
	//JoinModeOpen allow all
	JoinModeOpen JoinMode = "open" // 任何人都能加入
	//JoinModePassword need password
	JoinModePassword JoinMode = "password" // 需輸入密碼
)

// DirectRoomID 1對1房間的確定性 ID
// 兩個參與者各自計算出的結果必須相同，雙方才會訂閱到同一個 channel
func DirectRoomID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + "-" + userB
}

// IsDirectRoomMember check user id in a direct room id
func IsDirectRoomMember(roomID, userID string) bool {
	for _, part := range strings.Split(roomID, "-") {
		if part == userID {
			return true
		}
	}
	return false
}

// ChatRoom definition chat room
type ChatRoom struct {
	ID        string       `bson:"_id,omitempty"`
	RoomType  ChatRoomType `bson:"room_type"`
	Name      string       `bson:"name,omitempty"`
	Members   []string     `bson:"members,omitempty"`
	Admins    []string     `bson:"admins,omitempty"`
	JoinMode  JoinMode     `bson:"join_mode,omitempty"`
	Password  string       `bson:"password,omitempty"`
	CreatedAt int64        `bson:"created_at,omitempty"`
}

// Counterpart direct 房間內另一位成員，找不到回空字串
func (r *ChatRoom) Counterpart(userID string) string {
	if r.RoomType != ChatRoomTypeDirect {
		return ""
	}
	for _, m := range r.Members {
		if m != userID {
			return m
		}
	}
	return ""
}
