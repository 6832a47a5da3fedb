package domain

import "time"

// Voter 投票者，ID 是投票時的流水號
type Voter struct {
	UserID string `json:"userId"`
	ID     uint   `json:"id"`
}

// VoterList gorm json serializer 用
type VoterList []Voter

// Contains check voter in list
func (l VoterList) Contains(userID string) bool {
	for _, v := range l {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

// ZepChat 問答討論串
type ZepChat struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Content         string    `json:"content"`
	AuthorID        string    `gorm:"index;not null" json:"author_id"`
	UpVoters        VoterList `gorm:"serializer:json" json:"up_voters"`
	DownVoters      VoterList `gorm:"serializer:json" json:"down_voters"`
	AcceptedReplyID *uint     `json:"accepted_reply_id,omitempty"`
	Replies         []Reply   `gorm:"foreignKey:ZepChatID" json:"replies,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Reply 討論串的回覆
type Reply struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ZepChatID  uint      `gorm:"index;not null" json:"zep_chat_id"`
	AuthorID   string    `gorm:"index;not null" json:"author_id"`
	Content    string    `json:"content"`
	UpVoters   VoterList `gorm:"serializer:json" json:"up_voters"`
	DownVoters VoterList `gorm:"serializer:json" json:"down_voters"`
	CreatedAt  time.Time `json:"created_at"`
}

// Score 票數統計，up 減 down
func Score(ups, downs VoterList) int {
	return len(ups) - len(downs)
}
