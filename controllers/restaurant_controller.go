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

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	page, limit := pageParams(c)
	f := repository.RestaurantFilter{
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		PriceRange: c.Query("priceRange"),
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

// GET /api/restaurants/promoted
func (ctl *RestaurantController) Promoted(c *gin.Context) {
	items, err := ctl.Service.ListPromoted()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/restaurants/my
func (ctl *RestaurantController) Mine(c *gin.Context) {
	items, err := ctl.Service.ListByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	r, err := ctl.Service.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, r)
}

type CreateRestaurantRequest struct {
	PriceRange    string   `json:"priceRange"`
	TitleRo       string   `json:"titleRo" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	DescriptionRo string   `json:"descriptionRo"`
	DescriptionEn string   `json:"descriptionEn"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Address       string   `json:"address"`
	Images        []string `json:"images" binding:"required,min=1"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
}

// POST /api/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r := entity.Restaurant{
		PriceRange:    req.PriceRange,
		TitleRo:       req.TitleRo,
		TitleEn:       req.TitleEn,
		DescriptionRo: req.DescriptionRo,
		DescriptionEn: req.DescriptionEn,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		Images:        datatypes.JSONSlice[string](req.Images),
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
	}
	if r.PriceRange == "" {
		r.PriceRange = entity.PriceRangeModerate
	}

	if err := ctl.Service.Create(utils.CurrentUserID(c), &r); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, r)
}

// PATCH /api/restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	var upd services.RestaurantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r, err := ctl.Service.Update(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c), upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /api/restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}
