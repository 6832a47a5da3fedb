package repository

import (
	"gamer_social_service/internal/social/domain"

	"gorm.io/gorm"
)

// TicketRepo definition support ticket storage
type TicketRepo interface {
	AutoMigrate() error
	Create(t *domain.SupportTicket) error
	GetByID(id uint) (*domain.SupportTicket, error)
	Update(t *domain.SupportTicket) error
	ListByReporter(reporterID string) ([]domain.SupportTicket, error)
	ListByStatus(status domain.TicketStatus) ([]domain.SupportTicket, error)
	CreateReply(reply *domain.TicketReply) error
}

type ticketRepo struct {
	db *gorm.DB
}

// NewTicketRepo create TicketRepo
func NewTicketRepo(db *gorm.DB) TicketRepo {
	return &ticketRepo{db: db}
}

// AutoMigrate 依 model 建表
func (r *ticketRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.SupportTicket{}, &domain.TicketReply{})
}

// Create insert ticket
func (r *ticketRepo) Create(t *domain.SupportTicket) error {
	return r.db.Create(t).Error
}

// GetByID get ticket by id，回覆依時間帶出
func (r *ticketRepo) GetByID(id uint) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update save ticket
func (r *ticketRepo) Update(t *domain.SupportTicket) error {
	return r.db.Save(t).Error
}

// ListByReporter 回報者的客服單，新的在前
func (r *ticketRepo) ListByReporter(reporterID string) ([]domain.SupportTicket, error) {
	var list []domain.SupportTicket
	err := r.db.Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListByStatus 後台依狀態撈單，舊的在前先處理
func (r *ticketRepo) ListByStatus(status domain.TicketStatus) ([]domain.SupportTicket, error) {
	var list []domain.SupportTicket
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreateReply insert ticket reply
func (r *ticketRepo) CreateReply(reply *domain.TicketReply) error {
	return r.db.Create(reply).Error
}
