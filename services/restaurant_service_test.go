package services

import (
	"errors"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"
)

func TestRestaurantCreateValidatesPriceRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db), nil)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	bad := &entity.Restaurant{PriceRange: "CHEAP", TitleRo: "X", TitleEn: "X"}
	if err := svc.Create(owner.ID, bad); !errors.Is(err, ErrInvalidPriceRange) {
		t.Fatalf("got %v, want ErrInvalidPriceRange", err)
	}

	ok := &entity.Restaurant{PriceRange: entity.PriceRangePremium, TitleRo: "Hanul Ancutei", TitleEn: "Ancuta's Inn"}
	if err := svc.Create(owner.ID, ok); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ok.Status != entity.StatusPending {
		t.Errorf("status = %q, want PENDING", ok.Status)
	}
}

func TestRestaurantUpdateValidatesPriceRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db), nil)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	r := createRestaurant(t, db, owner.ID, entity.StatusApproved)

	bad := "CHEAP"
	if _, err := svc.Update(r.ID, owner.ID, entity.RoleClient, RestaurantUpdate{PriceRange: &bad}); !errors.Is(err, ErrInvalidPriceRange) {
		t.Fatalf("got %v, want ErrInvalidPriceRange", err)
	}

	good := entity.PriceRangeBudget
	got, err := svc.Update(r.ID, owner.ID, entity.RoleClient, RestaurantUpdate{PriceRange: &good})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.PriceRange != entity.PriceRangeBudget {
		t.Errorf("price range = %q", got.PriceRange)
	}
	if got.Status != entity.StatusPending {
		t.Errorf("status after owner edit = %q, want PENDING", got.Status)
	}
}
