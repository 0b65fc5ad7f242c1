package services

import (
	"errors"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceService struct {
	repo    *repository.ServiceRepository
	storage ImageStorage
}

func NewServiceService(repo *repository.ServiceRepository, storage ImageStorage) *ServiceService {
	return &ServiceService{repo: repo, storage: storage}
}

func (s *ServiceService) List(f repository.ServiceFilter) ([]entity.Service, int64, error) {
	if f.Status == "" {
		f.Status = entity.StatusApproved
		f.ActiveOnly = true
	}
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	return s.repo.FindAll(f)
}

func (s *ServiceService) Get(id uint) (*entity.Service, error) {
	sv, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sv, err
}

func (s *ServiceService) ListByOwner(userID uint) ([]entity.Service, error) {
	return s.repo.FindByOwner(userID)
}

func (s *ServiceService) ListPromoted() ([]entity.Service, error) {
	return s.repo.FindPromoted()
}

func (s *ServiceService) Create(ownerID uint, sv *entity.Service) error {
	if !entity.ValidServiceCategory(sv.Category) {
		return ErrInvalidCategory
	}
	sv.UserID = ownerID
	sv.Status = entity.StatusPending
	sv.IsActive = true
	sv.PromotionOrder = nil
	sv.IsLocationOfMonth = false
	return s.repo.Create(sv)
}

type ServiceUpdate struct {
	Category      *string   `json:"category"`
	TitleRo       *string   `json:"titleRo"`
	TitleEn       *string   `json:"titleEn"`
	DescriptionRo *string   `json:"descriptionRo"`
	DescriptionEn *string   `json:"descriptionEn"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Address       *string   `json:"address"`
	Price         *float64  `json:"price"`
	Images        *[]string `json:"images"`
	ContactPhone  *string   `json:"contactPhone"`
	ContactEmail  *string   `json:"contactEmail"`
}

func (s *ServiceService) Update(id, userID uint, role string, upd ServiceUpdate) (*entity.Service, error) {
	sv, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sv.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if upd.Category != nil && !entity.ValidServiceCategory(*upd.Category) {
		return nil, ErrInvalidCategory
	}

	updates := map[string]any{"status": entity.StatusPending}
	setIf(updates, "category", upd.Category)
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

	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *ServiceService) Delete(id, userID uint, role string) error {
	sv, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if sv.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	CleanupImages(s.storage, sv.Images)
	return nil
}

func (s *ServiceService) SetStatus(id uint, status string) (*entity.Service, error) {
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

func (s *ServiceService) ToggleActive(id uint) (*entity.Service, error) {
	sv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, map[string]any{"is_active": !sv.IsActive}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
