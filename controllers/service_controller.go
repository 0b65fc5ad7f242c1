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

type ServiceController struct {
	Service *services.ServiceService
}

func NewServiceController(s *services.ServiceService) *ServiceController {
	return &ServiceController{Service: s}
}

// GET /api/services
func (ctl *ServiceController) List(c *gin.Context) {
	page, limit := pageParams(c)
	f := repository.ServiceFilter{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	items, total, err := ctl.Service.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pagedResponse(items, total, f.Page, f.Limit))
}

// GET /api/services/categories
func (ctl *ServiceController) Categories(c *gin.Context) {
	resp.OK(c, gin.H{"categories": entity.ServiceCategories})
}

// GET /api/services/promoted
func (ctl *ServiceController) Promoted(c *gin.Context) {
	items, err := ctl.Service.ListPromoted()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/services/my
func (ctl *ServiceController) Mine(c *gin.Context) {
	items, err := ctl.Service.ListByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/services/:id
func (ctl *ServiceController) Detail(c *gin.Context) {
	sv, err := ctl.Service.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sv)
}

type CreateServiceRequest struct {
	Category      string   `json:"category" binding:"required"`
	TitleRo       string   `json:"titleRo" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	DescriptionRo string   `json:"descriptionRo"`
	DescriptionEn string   `json:"descriptionEn"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Address       string   `json:"address"`
	Price         *float64 `json:"price"`
	Images        []string `json:"images"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
}

// POST /api/services
func (ctl *ServiceController) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sv := entity.Service{
		Category:      req.Category,
		TitleRo:       req.TitleRo,
		TitleEn:       req.TitleEn,
		DescriptionRo: req.DescriptionRo,
		DescriptionEn: req.DescriptionEn,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		Price:         req.Price,
		Images:        datatypes.JSONSlice[string](req.Images),
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
	}

	if err := ctl.Service.Create(utils.CurrentUserID(c), &sv); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, sv)
}

// PATCH /api/services/:id
func (ctl *ServiceController) Update(c *gin.Context) {
	var upd services.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sv, err := ctl.Service.Update(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c), upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sv)
}

// DELETE /api/services/:id
func (ctl *ServiceController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(paramID(c), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "service deleted"})
}
