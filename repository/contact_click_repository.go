package repository

import (
	"time"

	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

type ContactClickRepository struct {
	DB *gorm.DB
}

func NewContactClickRepository(db *gorm.DB) *ContactClickRepository {
	return &ContactClickRepository{DB: db}
}

func (r *ContactClickRepository) Create(click *entity.ContactClick) error {
	return r.DB.Create(click).Error
}

type ContactTypeCount struct {
	ContactType string `json:"contactType"`
	Count       int64  `json:"count"`
}

type EntityCount struct {
	EntityType string `json:"entityType"`
	EntityID   uint   `json:"entityId"`
	Count      int64  `json:"count"`
}

func (r *ContactClickRepository) statsQuery(entityType string, from, to *time.Time) *gorm.DB {
	q := r.DB.Model(&entity.ContactClick{})
	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	return q
}

func (r *ContactClickRepository) CountTotal(entityType string, from, to *time.Time) (int64, error) {
	var total int64
	err := r.statsQuery(entityType, from, to).Count(&total).Error
	return total, err
}

func (r *ContactClickRepository) CountByContactType(entityType string, from, to *time.Time) ([]ContactTypeCount, error) {
	var rows []ContactTypeCount
	err := r.statsQuery(entityType, from, to).
		Select("contact_type, COUNT(*) as count").
		Group("contact_type").
		Scan(&rows).Error
	return rows, err
}

func (r *ContactClickRepository) CountByEntity(entityType string, from, to *time.Time) ([]EntityCount, error) {
	var rows []EntityCount
	err := r.statsQuery(entityType, from, to).
		Select("entity_type, entity_id, COUNT(*) as count").
		Group("entity_type, entity_id").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
