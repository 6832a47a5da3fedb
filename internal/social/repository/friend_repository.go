package repository

import (
	"errors"

	"gamer_social_service/internal/social/domain"

	"gorm.io/gorm"
)

// FriendRepo definition friendship storage
type FriendRepo interface {
	AutoMigrate() error
	Create(f *domain.Friendship) error
	GetByID(id uint) (*domain.Friendship, error)
	// FindBetween 不分方向找兩位成員間的關係，找不到回 (nil, nil)
	FindBetween(memberA, memberB string) (*domain.Friendship, error)
	FindByMember(memberID string, status domain.FriendshipStatus) ([]domain.Friendship, error)
	Update(f *domain.Friendship) error
	Delete(id uint) error
}

type friendRepo struct {
	db *gorm.DB
}

// NewFriendRepo create FriendRepo
func NewFriendRepo(db *gorm.DB) FriendRepo {
	return &friendRepo{db: db}
}

// AutoMigrate 依 model 建表
func (r *friendRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Friendship{})
}

// Create insert friendship
func (r *friendRepo) Create(f *domain.Friendship) error {
	return r.db.Create(f).Error
}

// GetByID get friendship by id
func (r *friendRepo) GetByID(id uint) (*domain.Friendship, error) {
	var f domain.Friendship
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindBetween 邀請可能由任一方發出，所以兩個方向都要查
func (r *friendRepo) FindBetween(memberA, memberB string) (*domain.Friendship, error) {
	var f domain.Friendship
	err := r.db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		memberA, memberB, memberB, memberA,
	).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByMember 成員的所有關係，邀請方或被邀請方都算
func (r *friendRepo) FindByMember(memberID string, status domain.FriendshipStatus) ([]domain.Friendship, error) {
	var list []domain.Friendship
	err := r.db.Where(
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		memberID, memberID, status,
	).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update save friendship
func (r *friendRepo) Update(f *domain.Friendship) error {
	return r.db.Save(f).Error
}

// Delete remove friendship
func (r *friendRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Friendship{}, id).Error
}
