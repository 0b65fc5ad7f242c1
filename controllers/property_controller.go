package controllers

import (
	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/repository"
	"github.com/catx7/visit-borsa-sub000/services"
	"github.com/catx7/visit-borsa-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type PropertyController struct {
	Service *services.PropertyService
}

func NewPropertyController(s *services.PropertyService) *PropertyController {
	return &PropertyController{Service: s}
}

// GET /api/properties
func (ctl *PropertyController) List(c *gin.Context) {
	page, limit := pageParams(c)
	f := repository.PropertyFilter{
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		Type:       c.Query("type"),
		RentalType: c.Query("rentalType"),
		MinPrice:   floatQuery(c, "minPrice"),
		MaxPrice:   floatQuery(c, "maxPrice"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Page:       page,
		Limit:      limit,
	}

	items, total, err := ctl.Service.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pagedResponse(items, total, f.Page, f.Limit))
}

// GET /api/properties/promoted
func (ctl *PropertyController) Promoted(c *gin.Context) {
	items, err := ctl.Service.ListPromoted()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/properties/my
func (ctl *PropertyController) Mine(c *gin.Context) {
	items, err := ctl.Service.ListByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/properties/:id
func (ctl *PropertyController) Detail(c *gin.Context) {
	p, err := ctl.Service.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

type CreatePropertyRequest struct {
	Type          string   `json:"type" binding:"required"`
	RentalType    string   `json:"rentalType"`
	TitleRo       string   `json:"titleRo" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	DescriptionRo string   `json:"descriptionRo"`
	DescriptionEn string   `json:"descriptionEn"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Address       string   `json:"address"`
	Price         float64  `json:"price"`
	Images        []string `json:"images" binding:"required,min=1"`
	Amenities     []string `json:"amenities"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
}

// POST /api/properties
func (ctl *PropertyController) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Property{
		Type:          req.Type,
		RentalType:    req.RentalType,
		TitleRo:       req.TitleRo,
		TitleEn:       req.TitleEn,
		DescriptionRo: req.DescriptionRo,
		DescriptionEn: req.DescriptionEn,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		Price:         req.Price,
		Images:        datatypes.JSONSlice[string](req.Images),
		Amenities:     datatypes.JSONSlice[string](req.Amenities),
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
	}
	if p.RentalType == "" {
		p.RentalType = entity.RentalTypeShortTerm
	}

	if err := ctl.Service.Create(utils.CurrentUserID(c), &p); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /api/properties/:id
func (ctl *PropertyController) Update(c *gin.Context) {
	var upd services.PropertyUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := ctl.Service.Update(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c), upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /api/properties/:id
func (ctl *PropertyController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "property deleted"})
}
