package repository

import (
	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

type RestaurantFilter struct {
	Status     string
	ActiveOnly bool
	Search     string
	PriceRange string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll(f RestaurantFilter) ([]entity.Restaurant, int64, error) {
	q := r.DB.Model(&entity.Restaurant{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.PriceRange != "" {
		q = q.Where("price_range = ?", f.PriceRange)
	}
	q = applySearch(q, f.Search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Restaurant
	err := q.Order(orderClause(f.SortBy, f.SortOrder, map[string]string{
		"createdAt": "created_at",
	})).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("User").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(userID uint) ([]entity.Restaurant, error) {
	var items []entity.Restaurant
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *RestaurantRepository) FindPromoted() ([]entity.Restaurant, error) {
	var items []entity.Restaurant
	err := r.DB.Where("promotion_order IS NOT NULL").
		Order("promotion_order ASC").Find(&items).Error
	return items, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Restaurant{}, id).Error
}
