package services

import (
	"errors"

	"github.com/catx7/visit-borsa-sub000/entity"

	"gorm.io/gorm"
)

// PromotionService manages the homepage promotion slots and the single
// location-of-month flag. Both are clear-then-set sequences over shared
// rows, so each runs inside one transaction.
type PromotionService struct {
	db *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{db: db}
}

func listingModel(entityType string) (any, error) {
	switch entityType {
	case entity.EntityProperty:
		return &entity.Property{}, nil
	case entity.EntityService:
		return &entity.Service{}, nil
	case entity.EntityRestaurant:
		return &entity.Restaurant{}, nil
	default:
		return nil, ErrInvalidEntityType
	}
}

// SetPromoted replaces the promoted set for one listing type. The ids
// must be distinct, exist and be approved; order in the list becomes
// the slot ordinal 1..N. Nothing is applied on a failed check.
func (s *PromotionService) SetPromoted(entityType string, ids []uint) error {
	if len(ids) > 3 {
		return ErrTooManyPromoted
	}
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return ErrDuplicatePromoted
		}
		seen[id] = struct{}{}
	}
	model, err := listingModel(entityType)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var count int64
			if err := tx.Model(model).
				Where("id IN ? AND status = ?", ids, entity.StatusApproved).
				Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return ErrNotApproved
			}
		}

		if err := tx.Model(model).
			Where("promotion_order IS NOT NULL").
			Update("promotion_order", nil).Error; err != nil {
			return err
		}

		for i, id := range ids {
			if err := tx.Model(model).
				Where("id = ?", id).
				Update("promotion_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetLocationOfMonth moves the single global highlight flag to one
// entity, clearing it everywhere else first. Runs in one transaction.
func (s *PromotionService) SetLocationOfMonth(entityType string, entityID uint) error {
	if !entity.ValidEntityType(entityType) {
		return ErrInvalidEntityType
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var target any
		if entityType == entity.EntityAttraction {
			target = &entity.TouristAttraction{}
			var count int64
			if err := tx.Model(target).Where("id = ?", entityID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
		} else {
			m, err := listingModel(entityType)
			if err != nil {
				return err
			}
			target = m
			var count int64
			if err := tx.Model(target).
				Where("id = ? AND status = ?", entityID, entity.StatusApproved).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotApproved
			}
		}

		for _, m := range []any{
			&entity.Property{}, &entity.Service{},
			&entity.Restaurant{}, &entity.TouristAttraction{},
		} {
			if err := tx.Model(m).
				Where("is_location_of_month = ?", true).
				Update("is_location_of_month", false).Error; err != nil {
				return err
			}
		}

		return tx.Model(target).
			Where("id = ?", entityID).
			Update("is_location_of_month", true).Error
	})
}

// LocationOfMonth is the currently flagged entity, if any.
type LocationOfMonth struct {
	EntityType string `json:"entityType"`
	Entity     any    `json:"entity"`
}

// GetLocationOfMonth checks the four tables and returns the single
// flagged row, or nil when none is set.
func (s *PromotionService) GetLocationOfMonth() (*LocationOfMonth, error) {
	var p entity.Property
	if err := s.db.Where("is_location_of_month = ?", true).First(&p).Error; err == nil {
		return &LocationOfMonth{EntityType: entity.EntityProperty, Entity: p}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var sv entity.Service
	if err := s.db.Where("is_location_of_month = ?", true).First(&sv).Error; err == nil {
		return &LocationOfMonth{EntityType: entity.EntityService, Entity: sv}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var r entity.Restaurant
	if err := s.db.Where("is_location_of_month = ?", true).First(&r).Error; err == nil {
		return &LocationOfMonth{EntityType: entity.EntityRestaurant, Entity: r}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var a entity.TouristAttraction
	if err := s.db.Where("is_location_of_month = ?", true).First(&a).Error; err == nil {
		return &LocationOfMonth{EntityType: entity.EntityAttraction, Entity: a}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}
