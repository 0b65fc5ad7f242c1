package repository

import (
	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

type AttractionFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type AttractionRepository struct {
	DB *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) *AttractionRepository {
	return &AttractionRepository{DB: db}
}

func (r *AttractionRepository) FindAll(f AttractionFilter) ([]entity.TouristAttraction, int64, error) {
	q := r.DB.Model(&entity.TouristAttraction{})
	q = applySearch(q, f.Search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.TouristAttraction
	err := q.Order(orderClause(f.SortBy, f.SortOrder, map[string]string{
		"createdAt": "created_at",
	})).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

// FindEvery loads the whole table, used by the nearby scan. The
// attraction count is in the tens, so a full load is fine.
func (r *AttractionRepository) FindEvery() ([]entity.TouristAttraction, error) {
	var items []entity.TouristAttraction
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *AttractionRepository) FindByID(id uint) (*entity.TouristAttraction, error) {
	var a entity.TouristAttraction
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttractionRepository) Create(a *entity.TouristAttraction) error {
	return r.DB.Create(a).Error
}

func (r *AttractionRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.TouristAttraction{}).Where("id = ?", id).Updates(updates).Error
}

func (r *AttractionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.TouristAttraction{}, id).Error
}
