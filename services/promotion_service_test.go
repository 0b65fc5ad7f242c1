package services

import (
	"errors"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"
)

func TestSetPromotedAssignsOrdinals(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	a := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	b := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	c := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	d := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	if err := svc.SetPromoted(entity.EntityProperty, []uint{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("SetPromoted: %v", err)
	}

	want := map[uint]int{c.ID: 1, a.ID: 2, b.ID: 3}
	var all []entity.Property
	if err := db.Find(&all).Error; err != nil {
		t.Fatalf("load properties: %v", err)
	}
	for _, p := range all {
		exp, promoted := want[p.ID]
		switch {
		case promoted && (p.PromotionOrder == nil || *p.PromotionOrder != exp):
			t.Errorf("property %d: promotion order %v, want %d", p.ID, p.PromotionOrder, exp)
		case !promoted && p.PromotionOrder != nil:
			t.Errorf("property %d should not be promoted, has order %d", p.ID, *p.PromotionOrder)
		}
	}

	// A later call replaces the whole set.
	if err := svc.SetPromoted(entity.EntityProperty, []uint{d.ID}); err != nil {
		t.Fatalf("SetPromoted replace: %v", err)
	}
	var promoted []entity.Property
	if err := db.Where("promotion_order IS NOT NULL").Find(&promoted).Error; err != nil {
		t.Fatalf("load promoted: %v", err)
	}
	if len(promoted) != 1 || promoted[0].ID != d.ID || *promoted[0].PromotionOrder != 1 {
		t.Fatalf("after replace want only property %d at slot 1, got %+v", d.ID, promoted)
	}
}

func TestSetPromotedRejectsMoreThanThree(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)

	err := svc.SetPromoted(entity.EntityProperty, []uint{1, 2, 3, 4})
	if !errors.Is(err, ErrTooManyPromoted) {
		t.Fatalf("got %v, want ErrTooManyPromoted", err)
	}
}

func TestSetPromotedRejectsDuplicateIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	a := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	b := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	err := svc.SetPromoted(entity.EntityProperty, []uint{a.ID, b.ID, a.ID})
	if !errors.Is(err, ErrDuplicatePromoted) {
		t.Fatalf("got %v, want ErrDuplicatePromoted", err)
	}
	var count int64
	db.Model(&entity.Property{}).Where("promotion_order IS NOT NULL").Count(&count)
	if count != 0 {
		t.Fatalf("%d properties promoted by a rejected call", count)
	}
}

func TestSetPromotedRejectsUnapproved(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	ok := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	pending := createProperty(t, db, owner.ID, entity.StatusPending, true)

	if err := svc.SetPromoted(entity.EntityProperty, []uint{ok.ID}); err != nil {
		t.Fatalf("SetPromoted: %v", err)
	}

	err := svc.SetPromoted(entity.EntityProperty, []uint{ok.ID, pending.ID})
	if !errors.Is(err, ErrNotApproved) {
		t.Fatalf("got %v, want ErrNotApproved", err)
	}

	// Failed call must not have touched the existing set.
	var cur entity.Property
	if err := db.First(&cur, ok.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if cur.PromotionOrder == nil || *cur.PromotionOrder != 1 {
		t.Errorf("existing promotion lost after rejected call: %v", cur.PromotionOrder)
	}
}

func TestSetPromotedEmptyClearsAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	if err := svc.SetPromoted(entity.EntityProperty, []uint{p.ID}); err != nil {
		t.Fatalf("SetPromoted: %v", err)
	}
	if err := svc.SetPromoted(entity.EntityProperty, nil); err != nil {
		t.Fatalf("SetPromoted clear: %v", err)
	}
	var count int64
	db.Model(&entity.Property{}).Where("promotion_order IS NOT NULL").Count(&count)
	if count != 0 {
		t.Fatalf("%d properties still promoted after clearing", count)
	}
}

func TestSetLocationOfMonthSingleFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	r := createRestaurant(t, db, owner.ID, entity.StatusApproved)

	if err := svc.SetLocationOfMonth(entity.EntityProperty, p.ID); err != nil {
		t.Fatalf("SetLocationOfMonth property: %v", err)
	}
	lom, err := svc.GetLocationOfMonth()
	if err != nil {
		t.Fatalf("GetLocationOfMonth: %v", err)
	}
	if lom == nil || lom.EntityType != entity.EntityProperty {
		t.Fatalf("got %+v, want property highlight", lom)
	}

	// Moving the flag clears it everywhere else.
	if err := svc.SetLocationOfMonth(entity.EntityRestaurant, r.ID); err != nil {
		t.Fatalf("SetLocationOfMonth restaurant: %v", err)
	}
	var flagged int64
	db.Model(&entity.Property{}).Where("is_location_of_month = ?", true).Count(&flagged)
	if flagged != 0 {
		t.Errorf("previous property still flagged")
	}
	lom, err = svc.GetLocationOfMonth()
	if err != nil {
		t.Fatalf("GetLocationOfMonth: %v", err)
	}
	if lom == nil || lom.EntityType != entity.EntityRestaurant {
		t.Fatalf("got %+v, want restaurant highlight", lom)
	}
}

func TestSetLocationOfMonthAttraction(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)

	a := createAttraction(t, db, "Cascada Cailor", testLat, testLng)
	if err := svc.SetLocationOfMonth(entity.EntityAttraction, a.ID); err != nil {
		t.Fatalf("SetLocationOfMonth attraction: %v", err)
	}
	lom, err := svc.GetLocationOfMonth()
	if err != nil {
		t.Fatalf("GetLocationOfMonth: %v", err)
	}
	if lom == nil || lom.EntityType != entity.EntityAttraction {
		t.Fatalf("got %+v, want attraction highlight", lom)
	}
}

func TestSetLocationOfMonthRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	pending := createProperty(t, db, owner.ID, entity.StatusPending, true)

	if err := svc.SetLocationOfMonth("WIDGET", 1); !errors.Is(err, ErrInvalidEntityType) {
		t.Errorf("invalid type: got %v, want ErrInvalidEntityType", err)
	}
	if err := svc.SetLocationOfMonth(entity.EntityProperty, pending.ID); !errors.Is(err, ErrNotApproved) {
		t.Errorf("pending listing: got %v, want ErrNotApproved", err)
	}
	if err := svc.SetLocationOfMonth(entity.EntityAttraction, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing attraction: got %v, want ErrNotFound", err)
	}
}

func TestGetLocationOfMonthNoneSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)

	lom, err := svc.GetLocationOfMonth()
	if err != nil {
		t.Fatalf("GetLocationOfMonth: %v", err)
	}
	if lom != nil {
		t.Fatalf("got %+v, want nil when nothing is flagged", lom)
	}
}
