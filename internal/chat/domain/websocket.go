package domain

// Action websocket request action
type Action string

const (
	// OpenDirect websocket action open_direct
	OpenDirect Action = "open_direct"
	// CreateCommunity websocket action create_community
	CreateCommunity Action = "create_community"
	// JoinCommunity websocket action join_community
	JoinCommunity Action = "join_community"
	// ExitCommunity websocket action exit_community
	ExitCommunity Action = "exit_community"

	// EnterRoom websocket action enter_room
	EnterRoom Action = "enter_room"
	// LeaveRoom websocket action leave_room
	LeaveRoom Action = "leave_room"

	// SendMessage websocket action send_message
	SendMessage Action = "send_message"
	// ReadMessage websocket action read_message
	ReadMessage Action = "read_message"

	// GetUnread websocket action get_unread
	GetUnread Action = "get_unread"
	// GetHistory websocket action get_history
	GetHistory Action = "get_history"
)

// 推播事件名稱，前端依名稱分流
const (
	// EventNewMessage direct 房間新訊息
	EventNewMessage = "newMessage"
	// EventNewCommunityMessage 社群房間新訊息
	EventNewCommunityMessage = "newCommunityMessage"
	// EventNewNotification 個人通知
	EventNewNotification = "newNotification"
)

// RoomChannel pubsub channel for a room
func RoomChannel(roomID string) string {
	return "chat:room:" + roomID
}

// UserChannel pubsub channel for a single user
func UserChannel(userID string) string {
	return "chat:user:" + userID
}

// PushEvent pubsub 推播封包
type PushEvent struct {
	Event   string                 `json:"event"`
	RoomID  string                 `json:"room_id,omitempty"`
	Message *ChatMessage           `json:"message,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// WSRequest websocket Request
type WSRequest struct {
	Action    string   `json:"action"`
	RoomID    string   `json:"room_id"`
	RoomName  string   `json:"room_name"`
	FriendID  string   `json:"friend_id"`
	Members   []string `json:"members"`
	JoinMode  string   `json:"join_mode"`
	Password  string   `json:"password"`
	Content   string   `json:"content"`
	MessageID string   `json:"message_id"`
	Before    int64    `json:"before"`
}

// WSResponse websocket Response
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}
