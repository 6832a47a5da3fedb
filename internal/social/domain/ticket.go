package domain

import "time"

// TicketStatus 客服單狀態
type TicketStatus string

const (
	// TicketOpen 新建立
	TicketOpen TicketStatus = "open"
	// TicketInProgress 客服處理中
	TicketInProgress TicketStatus = "in_progress"
	// TicketResolved 已處理完成
	TicketResolved TicketStatus = "resolved"
	// TicketClosed 已結案
	TicketClosed TicketStatus = "closed"
)

// CanTransition 狀態只能往前走，resolved 可以退回 in_progress 重新處理
func (s TicketStatus) CanTransition(to TicketStatus) bool {
	switch s {
	case TicketOpen:
		return to == TicketInProgress || to == TicketClosed
	case TicketInProgress:
		return to == TicketResolved || to == TicketClosed
	case TicketResolved:
		return to == TicketClosed || to == TicketInProgress
	}
	return false
}

// SupportTicket 客服單
type SupportTicket struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	ReporterID string        `gorm:"index;not null" json:"reporter_id"`
	Subject    string        `gorm:"not null" json:"subject"`
	Body       string        `json:"body"`
	Status     TicketStatus  `gorm:"index;default:open" json:"status"`
	Replies    []TicketReply `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// TicketReply 客服單回覆，Staff 標記是否為客服人員
type TicketReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"index;not null" json:"ticket_id"`
	AuthorID  string    `gorm:"not null" json:"author_id"`
	Body      string    `json:"body"`
	Staff     bool      `json:"staff"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketQueueName 客服單工作佇列名稱
const TicketQueueName = "ticket_jobs"

// TicketJob rabbitmq 佇列的工作訊息
type TicketJob struct {
	TicketID   uint   `json:"ticket_id"`
	ReporterID string `json:"reporter_id"`
	Subject    string `json:"subject"`
}
