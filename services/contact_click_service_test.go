package services

import (
	"errors"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"
)

func TestContactClickRecordAndStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactClickService(repository.NewContactClickRepository(db))

	clicks := []struct {
		et string
		id uint
		ct string
	}{
		{entity.EntityProperty, 1, entity.ContactPhone},
		{entity.EntityProperty, 1, entity.ContactEmail},
		{entity.EntityProperty, 2, entity.ContactPhone},
		{entity.EntityRestaurant, 5, entity.ContactPhone},
	}
	for _, c := range clicks {
		if err := svc.Record(c.et, c.id, c.ct); err != nil {
			t.Fatalf("Record(%v): %v", c, err)
		}
	}

	stats, err := svc.Stats("", nil, nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}

	stats, err = svc.Stats(entity.EntityProperty, nil, nil)
	if err != nil {
		t.Fatalf("Stats filtered: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("property total = %d, want 3", stats.Total)
	}
	byType := map[string]int64{}
	for _, c := range stats.ByContactType {
		byType[c.ContactType] = c.Count
	}
	if byType[entity.ContactPhone] != 2 || byType[entity.ContactEmail] != 1 {
		t.Errorf("byContactType = %v", byType)
	}
}

func TestContactClickRecordValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactClickService(repository.NewContactClickRepository(db))

	if err := svc.Record("WIDGET", 1, entity.ContactPhone); !errors.Is(err, ErrInvalidEntityType) {
		t.Errorf("got %v, want ErrInvalidEntityType", err)
	}
	if err := svc.Record(entity.EntityProperty, 1, "FAX"); !errors.Is(err, ErrInvalidContactType) {
		t.Errorf("got %v, want ErrInvalidContactType", err)
	}
	var count int64
	db.Model(&entity.ContactClick{}).Count(&count)
	if count != 0 {
		t.Errorf("invalid clicks were persisted")
	}
}
