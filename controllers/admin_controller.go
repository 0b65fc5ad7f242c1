package controllers

import (
	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminController struct {
	DB          *gorm.DB
	Properties  *services.PropertyService
	Services    *services.ServiceService
	Restaurants *services.RestaurantService
	Attractions *services.AttractionService
	Promotions  *services.PromotionService
}

func NewAdminController(
	db *gorm.DB,
	props *services.PropertyService,
	svcs *services.ServiceService,
	rests *services.RestaurantService,
	attractions *services.AttractionService,
	promos *services.PromotionService,
) *AdminController {
	return &AdminController{
		DB:          db,
		Properties:  props,
		Services:    svcs,
		Restaurants: rests,
		Attractions: attractions,
		Promotions:  promos,
	}
}

// GET /api/admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	db := ac.DB

	counts := map[string]int64{}
	pending := map[string]int64{}

	type kind struct {
		name  string
		model any
	}
	for _, k := range []kind{
		{"properties", &entity.Property{}},
		{"services", &entity.Service{}},
		{"restaurants", &entity.Restaurant{}},
	} {
		var total, pend int64
		if err := db.Model(k.model).Count(&total).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		if err := db.Model(k.model).Where("status = ?", entity.StatusPending).Count(&pend).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		counts[k.name] = total
		pending[k.name] = pend
	}

	var users, attractions, clicks int64
	if err := db.Model(&entity.User{}).Count(&users).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.TouristAttraction{}).Count(&attractions).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.ContactClick{}).Count(&clicks).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	counts["users"] = users
	counts["attractions"] = attractions
	counts["contactClicks"] = clicks

	resp.OK(c, gin.H{"totals": counts, "pending": pending})
}

// ownerInfo is the trimmed account view shown next to each listing on
// the admin screens.
type ownerInfo struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type adminListing[T any] struct {
	Listing T         `json:"listing"`
	Owner   ownerInfo `json:"owner"`
}

// listWithOwner pages one listing table with its owner preloaded, the
// admin screens need status regardless of visibility. The owner
// relation is json-hidden on the entity, so it is serialized here
// explicitly.
func listWithOwner[T any](ac *AdminController, c *gin.Context, model *T, owner func(T) entity.User) {
	page, limit := pageParams(c)
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 12
	}

	q := ac.DB.Model(model)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var items []T
	if err := q.Preload("User").
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	rows := make([]adminListing[T], 0, len(items))
	for _, it := range items {
		u := owner(it)
		rows = append(rows, adminListing[T]{
			Listing: it,
			Owner: ownerInfo{
				ID:          u.ID,
				Email:       u.Email,
				FirstName:   u.FirstName,
				LastName:    u.LastName,
				PhoneNumber: u.PhoneNumber,
			},
		})
	}
	resp.OK(c, pagedResponse(rows, total, page, limit))
}

// GET /api/admin/properties
func (ac *AdminController) ListProperties(c *gin.Context) {
	listWithOwner(ac, c, &entity.Property{}, func(p entity.Property) entity.User { return p.User })
}

// GET /api/admin/services
func (ac *AdminController) ListServices(c *gin.Context) {
	listWithOwner(ac, c, &entity.Service{}, func(s entity.Service) entity.User { return s.User })
}

// GET /api/admin/restaurants
func (ac *AdminController) ListRestaurants(c *gin.Context) {
	listWithOwner(ac, c, &entity.Restaurant{}, func(r entity.Restaurant) entity.User { return r.User })
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/admin/properties/:id/status
func (ac *AdminController) PatchPropertyStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ac.Properties.SetStatus(paramID(c), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /api/admin/services/:id/status
func (ac *AdminController) PatchServiceStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sv, err := ac.Services.SetStatus(paramID(c), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sv)
}

// PATCH /api/admin/restaurants/:id/status
func (ac *AdminController) PatchRestaurantStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := ac.Restaurants.SetStatus(paramID(c), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, r)
}

// PATCH /api/admin/properties/:id/toggle-active
func (ac *AdminController) TogglePropertyActive(c *gin.Context) {
	p, err := ac.Properties.ToggleActive(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /api/admin/services/:id/toggle-active
func (ac *AdminController) ToggleServiceActive(c *gin.Context) {
	sv, err := ac.Services.ToggleActive(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sv)
}

// PATCH /api/admin/restaurants/:id/toggle-active
func (ac *AdminController) ToggleRestaurantActive(c *gin.Context) {
	r, err := ac.Restaurants.ToggleActive(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /api/admin/properties/:id
func (ac *AdminController) DeleteProperty(c *gin.Context) {
	if err := ac.Properties.Delete(paramID(c), 0, entity.RoleAdmin); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "property deleted"})
}

// DELETE /api/admin/services/:id
func (ac *AdminController) DeleteService(c *gin.Context) {
	if err := ac.Services.Delete(paramID(c), 0, entity.RoleAdmin); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "service deleted"})
}

// DELETE /api/admin/restaurants/:id
func (ac *AdminController) DeleteRestaurant(c *gin.Context) {
	if err := ac.Restaurants.Delete(paramID(c), 0, entity.RoleAdmin); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}

// GET /api/admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := ac.DB.Model(&entity.User{}).Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var users []entity.User
	if err := ac.DB.Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pagedResponse(users, total, page, limit))
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PATCH /api/admin/users/:id/role
func (ac *AdminController) PatchUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Role != entity.RoleClient && req.Role != entity.RoleAdmin {
		resp.BadRequest(c, "role must be CLIENT or ADMIN")
		return
	}

	var user entity.User
	if err := ac.DB.First(&user, paramID(c)).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	if err := ac.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

type promotedRequest struct {
	IDs []uint `json:"ids"`
}

var promotedKinds = map[string]string{
	"properties":  entity.EntityProperty,
	"services":    entity.EntityService,
	"restaurants": entity.EntityRestaurant,
}

// PUT /api/admin/promoted/:kind
func (ac *AdminController) SetPromoted(c *gin.Context) {
	entityType, ok := promotedKinds[c.Param("kind")]
	if !ok {
		resp.BadRequest(c, "kind must be properties, services or restaurants")
		return
	}

	var req promotedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Promotions.SetPromoted(entityType, req.IDs); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "promoted listings updated"})
}

type locationOfMonthRequest struct {
	EntityType string `json:"entityType" binding:"required"`
	EntityID   uint   `json:"entityId" binding:"required"`
}

// PUT /api/admin/location-of-month
func (ac *AdminController) SetLocationOfMonth(c *gin.Context) {
	var req locationOfMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Promotions.SetLocationOfMonth(req.EntityType, req.EntityID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "location of month updated"})
}

type attractionRequest struct {
	TitleRo       string   `json:"titleRo" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	DescriptionRo string   `json:"descriptionRo"`
	DescriptionEn string   `json:"descriptionEn"`
	Latitude      float64  `json:"latitude" binding:"required"`
	Longitude     float64  `json:"longitude" binding:"required"`
	Address       string   `json:"address"`
	Images        []string `json:"images"`
}

// POST /api/admin/attractions
func (ac *AdminController) CreateAttraction(c *gin.Context) {
	var req attractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a := entity.TouristAttraction{
		TitleRo:       req.TitleRo,
		TitleEn:       req.TitleEn,
		DescriptionRo: req.DescriptionRo,
		DescriptionEn: req.DescriptionEn,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		Images:        datatypes.JSONSlice[string](req.Images),
	}
	if err := ac.Attractions.Create(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /api/admin/attractions/:id
func (ac *AdminController) UpdateAttraction(c *gin.Context) {
	var upd services.AttractionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := ac.Attractions.Update(paramID(c), upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /api/admin/attractions/:id
func (ac *AdminController) DeleteAttraction(c *gin.Context) {
	if err := ac.Attractions.Delete(paramID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "attraction deleted"})
}
