package services

import (
	"errors"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RestaurantService struct {
	repo    *repository.RestaurantRepository
	storage ImageStorage
}

func NewRestaurantService(repo *repository.RestaurantRepository, storage ImageStorage) *RestaurantService {
	return &RestaurantService{repo: repo, storage: storage}
}

func (s *RestaurantService) List(f repository.RestaurantFilter) ([]entity.Restaurant, int64, error) {
	if f.Status == "" {
		f.Status = entity.StatusApproved
		f.ActiveOnly = true
	}
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	return s.repo.FindAll(f)
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *RestaurantService) ListByOwner(userID uint) ([]entity.Restaurant, error) {
	return s.repo.FindByOwner(userID)
}

func (s *RestaurantService) ListPromoted() ([]entity.Restaurant, error) {
	return s.repo.FindPromoted()
}

func (s *RestaurantService) Create(ownerID uint, r *entity.Restaurant) error {
	if !entity.ValidPriceRange(r.PriceRange) {
		return ErrInvalidPriceRange
	}
	r.UserID = ownerID
	r.Status = entity.StatusPending
	r.IsActive = true
	r.PromotionOrder = nil
	r.IsLocationOfMonth = false
	return s.repo.Create(r)
}

type RestaurantUpdate struct {
	PriceRange    *string   `json:"priceRange"`
	TitleRo       *string   `json:"titleRo"`
	TitleEn       *string   `json:"titleEn"`
	DescriptionRo *string   `json:"descriptionRo"`
	DescriptionEn *string   `json:"descriptionEn"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Address       *string   `json:"address"`
	Images        *[]string `json:"images"`
	ContactPhone  *string   `json:"contactPhone"`
	ContactEmail  *string   `json:"contactEmail"`
}

func (s *RestaurantService) Update(id, userID uint, role string, upd RestaurantUpdate) (*entity.Restaurant, error) {
	r, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if r.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if upd.Images != nil && len(*upd.Images) == 0 {
		return nil, ErrNoImages
	}
	if upd.PriceRange != nil && !entity.ValidPriceRange(*upd.PriceRange) {
		return nil, ErrInvalidPriceRange
	}

	updates := map[string]any{"status": entity.StatusPending}
	setIf(updates, "price_range", upd.PriceRange)
	setIf(updates, "title_ro", upd.TitleRo)
	setIf(updates, "title_en", upd.TitleEn)
	setIf(updates, "description_ro", upd.DescriptionRo)
	setIf(updates, "description_en", upd.DescriptionEn)
	setIf(updates, "latitude", upd.Latitude)
	setIf(updates, "longitude", upd.Longitude)
	setIf(updates, "address", upd.Address)
	setIf(updates, "contact_phone", upd.ContactPhone)
	setIf(updates, "contact_email", upd.ContactEmail)
	if upd.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*upd.Images)
	}

	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *RestaurantService) Delete(id, userID uint, role string) error {
	r, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if r.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	CleanupImages(s.storage, r.Images)
	return nil
}

func (s *RestaurantService) SetStatus(id uint, status string) (*entity.Restaurant, error) {
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

func (s *RestaurantService) ToggleActive(id uint) (*entity.Restaurant, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, map[string]any{"is_active": !r.IsActive}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
