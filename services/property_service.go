package services

import (
	"errors"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyService struct {
	repo    *repository.PropertyRepository
	storage ImageStorage
}

func NewPropertyService(repo *repository.PropertyRepository, storage ImageStorage) *PropertyService {
	return &PropertyService{repo: repo, storage: storage}
}

// List returns a page of properties. Public queries with no explicit
// status default to approved, active listings.
func (s *PropertyService) List(f repository.PropertyFilter) ([]entity.Property, int64, error) {
	if f.Status == "" {
		f.Status = entity.StatusApproved
		f.ActiveOnly = true
	}
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	return s.repo.FindAll(f)
}

func (s *PropertyService) Get(id uint) (*entity.Property, error) {
	p, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *PropertyService) ListByOwner(userID uint) ([]entity.Property, error) {
	return s.repo.FindByOwner(userID)
}

func (s *PropertyService) ListPromoted() ([]entity.Property, error) {
	return s.repo.FindPromoted()
}

// Create inserts an owner submission. Status is always forced to PENDING
// regardless of what the caller sent.
func (s *PropertyService) Create(ownerID uint, p *entity.Property) error {
	if !entity.ValidPropertyType(p.Type) {
		return ErrInvalidPropertyType
	}
	if !entity.ValidRentalType(p.RentalType) {
		return ErrInvalidRentalType
	}
	p.UserID = ownerID
	p.Status = entity.StatusPending
	p.IsActive = true
	p.PromotionOrder = nil
	p.IsLocationOfMonth = false
	return s.repo.Create(p)
}

type PropertyUpdate struct {
	Type          *string   `json:"type"`
	RentalType    *string   `json:"rentalType"`
	TitleRo       *string   `json:"titleRo"`
	TitleEn       *string   `json:"titleEn"`
	DescriptionRo *string   `json:"descriptionRo"`
	DescriptionEn *string   `json:"descriptionEn"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Address       *string   `json:"address"`
	Price         *float64  `json:"price"`
	Images        *[]string `json:"images"`
	Amenities     *[]string `json:"amenities"`
	ContactPhone  *string   `json:"contactPhone"`
	ContactEmail  *string   `json:"contactEmail"`
}

// Update applies an owner edit. Any edit resets the listing back to
// PENDING for re-review. Stripping a property of all its images is
// rejected.
func (s *PropertyService) Update(id, userID uint, role string, upd PropertyUpdate) (*entity.Property, error) {
	p, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if upd.Images != nil && len(*upd.Images) == 0 {
		return nil, ErrNoImages
	}
	if upd.Type != nil && !entity.ValidPropertyType(*upd.Type) {
		return nil, ErrInvalidPropertyType
	}
	if upd.RentalType != nil && !entity.ValidRentalType(*upd.RentalType) {
		return nil, ErrInvalidRentalType
	}

	updates := map[string]any{"status": entity.StatusPending}
	setIf(updates, "type", upd.Type)
	setIf(updates, "rental_type", upd.RentalType)
	setIf(updates, "title_ro", upd.TitleRo)
	setIf(updates, "title_en", upd.TitleEn)
	setIf(updates, "description_ro", upd.DescriptionRo)
	setIf(updates, "description_en", upd.DescriptionEn)
	setIf(updates, "latitude", upd.Latitude)
	setIf(updates, "longitude", upd.Longitude)
	setIf(updates, "address", upd.Address)
	setIf(updates, "price", upd.Price)
	setIf(updates, "contact_phone", upd.ContactPhone)
	setIf(updates, "contact_email", upd.ContactEmail)
	if upd.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*upd.Images)
	}
	if upd.Amenities != nil {
		updates["amenities"] = datatypes.JSONSlice[string](*upd.Amenities)
	}

	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

// Delete hard-deletes the listing, then removes its images in the
// background. Orphaned files on cleanup failure are accepted.
func (s *PropertyService) Delete(id, userID uint, role string) error {
	p, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if p.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	CleanupImages(s.storage, p.Images)
	return nil
}

// SetStatus is the admin moderation switch. Approving also reactivates
// the listing.
func (s *PropertyService) SetStatus(id uint, status string) (*entity.Property, error) {
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	updates := map[string]any{"status": status}
	if status == entity.StatusApproved {
		updates["is_active"] = true
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

// ToggleActive flips the subscription gate.
func (s *PropertyService) ToggleActive(id uint) (*entity.Property, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, map[string]any{"is_active": !p.IsActive}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func setIf[T any](updates map[string]any, col string, v *T) {
	if v != nil {
		updates[col] = *v
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
