package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 兩位成員不論順序算出同一個房間 ID
func TestDirectRoomID_Symmetric(t *testing.T) {
	assert.Equal(t, DirectRoomID("alice", "bob"), DirectRoomID("bob", "alice"))
	assert.Equal(t, "alice-bob", DirectRoomID("bob", "alice"))
}

func TestIsDirectRoomMember(t *testing.T) {
	roomID := DirectRoomID("alice", "bob")
	assert.True(t, IsDirectRoomMember(roomID, "alice"))
	assert.True(t, IsDirectRoomMember(roomID, "bob"))
	assert.False(t, IsDirectRoomMember(roomID, "carol"))
}

func TestChatRoom_Counterpart(t *testing.T) {
	room := &ChatRoom{
		RoomType: ChatRoomTypeDirect,
		Members:  []string{"alice", "bob"},
	}
	assert.Equal(t, "bob", room.Counterpart("alice"))
	assert.Equal(t, "alice", room.Counterpart("bob"))

	community := &ChatRoom{
		RoomType: ChatRoomTypeCommunity,
		Members:  []string{"alice", "bob", "carol"},
	}
	assert.Equal(t, "", community.Counterpart("alice"))
}
