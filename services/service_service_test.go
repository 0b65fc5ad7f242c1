package services

import (
	"errors"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"
)

func TestServiceCreateValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewServiceService(repository.NewServiceRepository(db), nil)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	bad := &entity.Service{Category: "DOG_WALKING", TitleRo: "X", TitleEn: "X"}
	if err := svc.Create(owner.ID, bad); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("got %v, want ErrInvalidCategory", err)
	}

	ok := &entity.Service{Category: "SKI_SCHOOL", TitleRo: "Scoala de schi", TitleEn: "Ski school"}
	if err := svc.Create(owner.ID, ok); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ok.Status != entity.StatusPending {
		t.Errorf("status = %q, want PENDING", ok.Status)
	}
}

func TestServiceUpdateValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewServiceService(repository.NewServiceRepository(db), nil)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	sv := &entity.Service{Category: "SKI_SCHOOL", TitleRo: "X", TitleEn: "X"}
	if err := svc.Create(owner.ID, sv); err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := "DOG_WALKING"
	if _, err := svc.Update(sv.ID, owner.ID, entity.RoleClient, ServiceUpdate{Category: &bad}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("got %v, want ErrInvalidCategory", err)
	}

	good := "BIKE_RENTAL"
	got, err := svc.Update(sv.ID, owner.ID, entity.RoleClient, ServiceUpdate{Category: &good})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Category != "BIKE_RENTAL" {
		t.Errorf("category = %q", got.Category)
	}
}

func TestServiceListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewServiceService(repository.NewServiceRepository(db), nil)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	mk := func(category, titleEn string, price float64) {
		s := &entity.Service{
			Category: category, TitleRo: titleEn, TitleEn: titleEn,
			Status: entity.StatusApproved, IsActive: true, UserID: owner.ID,
			Price: &price,
		}
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}
	mk("SKI_SCHOOL", "Beginner ski lessons", 150)
	mk("SKI_RENTAL", "Full ski equipment", 80)
	mk("BIKE_RENTAL", "Mountain bike hire", 60)

	_, total, err := svc.List(repository.ServiceFilter{Category: "SKI_RENTAL"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if total != 1 {
		t.Errorf("category filter total = %d, want 1", total)
	}

	items, total, err := svc.List(repository.ServiceFilter{Search: "ski"})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if total != 2 {
		t.Errorf("search total = %d, want 2: %+v", total, items)
	}
}
