package repository

import (
	"gamer_social_service/internal/social/domain"

	"gorm.io/gorm"
)

// ZepChatRepo definition zep chat storage
type ZepChatRepo interface {
	AutoMigrate() error
	Create(z *domain.ZepChat) error
	GetByID(id uint) (*domain.ZepChat, error)
	Update(z *domain.ZepChat) error
	// Search 關鍵字搜尋標題或內容，keyword 為空回傳最新的討論串
	Search(keyword string, limit, offset int) ([]domain.ZepChat, error)
	CreateReply(reply *domain.Reply) error
	GetReply(id uint) (*domain.Reply, error)
	UpdateReply(reply *domain.Reply) error
}

type zepChatRepo struct {
	db *gorm.DB
}

// NewZepChatRepo create ZepChatRepo
func NewZepChatRepo(db *gorm.DB) ZepChatRepo {
	return &zepChatRepo{db: db}
}

// AutoMigrate 依 model 建表
func (r *zepChatRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ZepChat{}, &domain.Reply{})
}

// Create insert zep chat
func (r *zepChatRepo) Create(z *domain.ZepChat) error {
	return r.db.Create(z).Error
}

// GetByID get zep chat by id，回覆一併帶出依建立時間排序
func (r *zepChatRepo) GetByID(id uint) (*domain.ZepChat, error) {
	var z domain.ZepChat
	err := r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&z, id).Error
	if err != nil {
		return nil, err
	}
	return &z, nil
}

// Update save zep chat
func (r *zepChatRepo) Update(z *domain.ZepChat) error {
	return r.db.Save(z).Error
}

// Search 利用 PostgreSQL 的 ILIKE 實作模糊搜尋（標題或內容包含 keyword）
func (r *zepChatRepo) Search(keyword string, limit, offset int) ([]domain.ZepChat, error) {
	if limit <= 0 {
		limit = 20
	}
	var list []domain.ZepChat
	query := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateReply insert reply
func (r *zepChatRepo) CreateReply(reply *domain.Reply) error {
	return r.db.Create(reply).Error
}

// GetReply get reply by id
func (r *zepChatRepo) GetReply(id uint) (*domain.Reply, error) {
	var reply domain.Reply
	if err := r.db.First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// UpdateReply save reply
func (r *zepChatRepo) UpdateReply(reply *domain.Reply) error {
	return r.db.Save(reply).Error
}
