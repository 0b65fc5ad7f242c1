package repository

import (
	"strings"

	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

type PropertyFilter struct {
	Status     string
	ActiveOnly bool
	Search     string
	Type       string
	RentalType string
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

type PropertyRepository struct {
	DB *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) FindAll(f PropertyFilter) ([]entity.Property, int64, error) {
	q := r.DB.Model(&entity.Property{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.RentalType != "" {
		q = q.Where("rental_type = ?", f.RentalType)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	q = applySearch(q, f.Search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Property
	err := q.Order(orderClause(f.SortBy, f.SortOrder, map[string]string{
		"price":     "price",
		"createdAt": "created_at",
	})).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *PropertyRepository) FindByID(id uint) (*entity.Property, error) {
	var p entity.Property
	if err := r.DB.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) FindByOwner(userID uint) ([]entity.Property, error) {
	var items []entity.Property
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *PropertyRepository) FindPromoted() ([]entity.Property, error) {
	var items []entity.Property
	err := r.DB.Where("promotion_order IS NOT NULL").
		Order("promotion_order ASC").Find(&items).Error
	return items, err
}

func (r *PropertyRepository) Create(p *entity.Property) error {
	return r.DB.Create(p).Error
}

func (r *PropertyRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Property{}).Where("id = ?", id).Updates(updates).Error
}

// Delete is a hard delete.
func (r *PropertyRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Property{}, id).Error
}

// applySearch adds a case-insensitive substring match over the four
// bilingual text columns, OR-combined.
func applySearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	term := "%" + strings.ToLower(search) + "%"
	return q.Where(
		"LOWER(title_ro) LIKE ? OR LOWER(title_en) LIKE ? OR LOWER(description_ro) LIKE ? OR LOWER(description_en) LIKE ?",
		term, term, term, term,
	)
}

// orderClause whitelists sortable columns, defaulting to newest first.
func orderClause(sortBy, sortOrder string, allowed map[string]string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
