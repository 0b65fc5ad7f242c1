package services

import (
	"time"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"
)

type ContactClickService struct {
	repo *repository.ContactClickRepository
}

func NewContactClickService(repo *repository.ContactClickRepository) *ContactClickService {
	return &ContactClickService{repo: repo}
}

// Record appends one reveal event. The log is analytics-only, nothing
// reads it on the hot path.
func (s *ContactClickService) Record(entityType string, entityID uint, contactType string) error {
	if !entity.ValidEntityType(entityType) {
		return ErrInvalidEntityType
	}
	if !entity.ValidContactType(contactType) {
		return ErrInvalidContactType
	}
	return s.repo.Create(&entity.ContactClick{
		EntityType:  entityType,
		EntityID:    entityID,
		ContactType: contactType,
	})
}

type ContactClickStats struct {
	Total         int64                         `json:"total"`
	ByContactType []repository.ContactTypeCount `json:"byContactType"`
	ByEntity      []repository.EntityCount      `json:"byEntity"`
}

func (s *ContactClickService) Stats(entityType string, from, to *time.Time) (*ContactClickStats, error) {
	if entityType != "" && !entity.ValidEntityType(entityType) {
		return nil, ErrInvalidEntityType
	}

	total, err := s.repo.CountTotal(entityType, from, to)
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.CountByContactType(entityType, from, to)
	if err != nil {
		return nil, err
	}
	byEntity, err := s.repo.CountByEntity(entityType, from, to)
	if err != nil {
		return nil, err
	}

	return &ContactClickStats{Total: total, ByContactType: byType, ByEntity: byEntity}, nil
}
