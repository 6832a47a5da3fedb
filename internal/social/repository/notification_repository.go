package repository

import (
	"gamer_social_service/internal/social/domain"

	"gorm.io/gorm"
)

// NotificationRepo definition notification storage
type NotificationRepo interface {
	AutoMigrate() error
	Create(n *domain.Notification) error
	GetByID(id uint) (*domain.Notification, error)
	// ListByRecipient 收件者的通知，新的在前
	ListByRecipient(recipientID string) ([]domain.Notification, error)
	Delete(id uint) error
	DeleteByRecipient(recipientID string) error
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo create NotificationRepo
func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{db: db}
}

// AutoMigrate 依 model 建表
func (r *notificationRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Notification{})
}

// Create insert notification
func (r *notificationRepo) Create(n *domain.Notification) error {
	return r.db.Create(n).Error
}

// GetByID get notification by id
func (r *notificationRepo) GetByID(id uint) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByRecipient list notifications for recipient
func (r *notificationRepo) ListByRecipient(recipientID string) ([]domain.Notification, error) {
	var list []domain.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete remove notification
func (r *notificationRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Notification{}, id).Error
}

// DeleteByRecipient 清空收件者全部通知
func (r *notificationRepo) DeleteByRecipient(recipientID string) error {
	return r.db.Where("recipient_id = ?", recipientID).Delete(&domain.Notification{}).Error
}
