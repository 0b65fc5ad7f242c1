package services

import (
	"errors"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"

	"gorm.io/gorm"
)

func newPropertyService(db *gorm.DB) *PropertyService {
	return NewPropertyService(repository.NewPropertyRepository(db), nil)
}

func strPtr(s string) *string { return &s }

func TestPropertyCreateForcesPending(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	p := &entity.Property{
		Type: entity.PropertyTypeVilla, RentalType: entity.RentalTypeShortTerm,
		TitleRo: "Vila", TitleEn: "Villa",
		Status: entity.StatusApproved, // caller tries to self-approve
	}
	order := 2
	p.PromotionOrder = &order
	p.IsLocationOfMonth = true

	if err := svc.Create(owner.ID, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got entity.Property
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != entity.StatusPending {
		t.Errorf("status = %q, want PENDING", got.Status)
	}
	if !got.IsActive {
		t.Errorf("new listing should start active")
	}
	if got.PromotionOrder != nil || got.IsLocationOfMonth {
		t.Errorf("caller-supplied promotion fields must be stripped: %+v", got)
	}
	if got.UserID != owner.ID {
		t.Errorf("owner = %d, want %d", got.UserID, owner.ID)
	}
}

func TestPropertyUpdateOwnershipAndRePending(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	other := createUser(t, db, "other@example.com", entity.RoleClient)

	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	// A stranger cannot edit, and the row stays untouched.
	_, err := svc.Update(p.ID, other.ID, entity.RoleClient, PropertyUpdate{TitleEn: strPtr("Hijacked")})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	var cur entity.Property
	if err := db.First(&cur, p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cur.TitleEn != "Cabin" || cur.Status != entity.StatusApproved {
		t.Fatalf("row changed by forbidden update: %+v", cur)
	}

	// The owner can, and the edit goes back to moderation.
	got, err := svc.Update(p.ID, owner.ID, entity.RoleClient, PropertyUpdate{TitleEn: strPtr("Renovated Cabin")})
	if err != nil {
		t.Fatalf("owner Update: %v", err)
	}
	if got.TitleEn != "Renovated Cabin" {
		t.Errorf("title = %q", got.TitleEn)
	}
	if got.Status != entity.StatusPending {
		t.Errorf("status after owner edit = %q, want PENDING", got.Status)
	}

	// Admin may edit regardless of ownership.
	if _, err := svc.Update(p.ID, 0, entity.RoleAdmin, PropertyUpdate{Price: floatPtr(120)}); err != nil {
		t.Fatalf("admin Update: %v", err)
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestPropertyCreateValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	badType := &entity.Property{Type: "CASTLE", RentalType: entity.RentalTypeShortTerm, TitleRo: "X", TitleEn: "X"}
	if err := svc.Create(owner.ID, badType); !errors.Is(err, ErrInvalidPropertyType) {
		t.Fatalf("got %v, want ErrInvalidPropertyType", err)
	}
	badRental := &entity.Property{Type: entity.PropertyTypeCabin, RentalType: "WEEKLY", TitleRo: "X", TitleEn: "X"}
	if err := svc.Create(owner.ID, badRental); !errors.Is(err, ErrInvalidRentalType) {
		t.Fatalf("got %v, want ErrInvalidRentalType", err)
	}
	var count int64
	db.Model(&entity.Property{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d rows created from rejected submissions", count)
	}
}

func TestPropertyUpdateValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	if _, err := svc.Update(p.ID, owner.ID, entity.RoleClient, PropertyUpdate{Type: strPtr("CASTLE")}); !errors.Is(err, ErrInvalidPropertyType) {
		t.Fatalf("got %v, want ErrInvalidPropertyType", err)
	}
	if _, err := svc.Update(p.ID, owner.ID, entity.RoleClient, PropertyUpdate{RentalType: strPtr("WEEKLY")}); !errors.Is(err, ErrInvalidRentalType) {
		t.Fatalf("got %v, want ErrInvalidRentalType", err)
	}

	got, err := svc.Update(p.ID, owner.ID, entity.RoleClient, PropertyUpdate{RentalType: strPtr(entity.RentalTypeLongTerm)})
	if err != nil {
		t.Fatalf("valid rental type: %v", err)
	}
	if got.RentalType != entity.RentalTypeLongTerm {
		t.Errorf("rental type = %q", got.RentalType)
	}
}

func TestPropertyUpdateRejectsEmptyImages(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	empty := []string{}
	_, err := svc.Update(p.ID, owner.ID, entity.RoleClient, PropertyUpdate{Images: &empty})
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("got %v, want ErrNoImages", err)
	}
}

func TestPropertyListDefaultsToApprovedActive(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)

	visible := createProperty(t, db, owner.ID, entity.StatusApproved, true)
	createProperty(t, db, owner.ID, entity.StatusPending, true)
	createProperty(t, db, owner.ID, entity.StatusApproved, false)
	createProperty(t, db, owner.ID, entity.StatusDraft, true)

	items, total, err := svc.List(repository.PropertyFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != visible.ID {
		t.Fatalf("public list = %d items (total %d), want only the approved active one", len(items), total)
	}

	// An explicit status filter sees everything in that state.
	_, total, err = svc.List(repository.PropertyFilter{Status: entity.StatusPending})
	if err != nil {
		t.Fatalf("List pending: %v", err)
	}
	if total != 1 {
		t.Fatalf("pending total = %d, want 1", total)
	}
}

func TestPropertySetStatusApproveReactivates(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	p := createProperty(t, db, owner.ID, entity.StatusPending, false)

	got, err := svc.SetStatus(p.ID, entity.StatusApproved)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if got.Status != entity.StatusApproved || !got.IsActive {
		t.Fatalf("approve should set APPROVED and reactivate, got %+v", got)
	}

	if _, err := svc.SetStatus(p.ID, "BOGUS"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("got %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetStatus(9999, entity.StatusDraft); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestPropertyToggleActiveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	got, err := svc.ToggleActive(p.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if got.IsActive {
		t.Fatalf("first toggle should deactivate")
	}
	got, err = svc.ToggleActive(p.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !got.IsActive {
		t.Fatalf("second toggle should restore the original state")
	}
}

func TestPropertyDeleteOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	owner := createUser(t, db, "owner@example.com", entity.RoleClient)
	other := createUser(t, db, "other@example.com", entity.RoleClient)
	p := createProperty(t, db, owner.ID, entity.StatusApproved, true)

	if err := svc.Delete(p.ID, other.ID, entity.RoleClient); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(p.ID, owner.ID, entity.RoleClient); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}

	// Hard delete, no soft-deleted leftovers.
	var count int64
	db.Unscoped().Model(&entity.Property{}).Where("id = ?", p.ID).Count(&count)
	if count != 0 {
		t.Fatalf("property row still present after delete")
	}
	if err := svc.Delete(p.ID, owner.ID, entity.RoleClient); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting again: got %v, want ErrNotFound", err)
	}
}
