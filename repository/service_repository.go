package repository

import (
	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

type ServiceFilter struct {
	Status     string
	ActiveOnly bool
	Search     string
	Category   string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

type ServiceRepository struct {
	DB *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

func (r *ServiceRepository) FindAll(f ServiceFilter) ([]entity.Service, int64, error) {
	q := r.DB.Model(&entity.Service{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	q = applySearch(q, f.Search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Service
	err := q.Order(orderClause(f.SortBy, f.SortOrder, map[string]string{
		"price":     "price",
		"createdAt": "created_at",
	})).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *ServiceRepository) FindByID(id uint) (*entity.Service, error) {
	var s entity.Service
	if err := r.DB.Preload("User").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) FindByOwner(userID uint) ([]entity.Service, error) {
	var items []entity.Service
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *ServiceRepository) FindPromoted() ([]entity.Service, error) {
	var items []entity.Service
	err := r.DB.Where("promotion_order IS NOT NULL").
		Order("promotion_order ASC").Find(&items).Error
	return items, err
}

func (r *ServiceRepository) Create(s *entity.Service) error {
	return r.DB.Create(s).Error
}

func (r *ServiceRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Service{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ServiceRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Service{}, id).Error
}
