package controllers

import (
	"strconv"

	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/repository"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
)

type AttractionController struct {
	Service *services.AttractionService
}

func NewAttractionController(s *services.AttractionService) *AttractionController {
	return &AttractionController{Service: s}
}

// GET /api/attractions
func (ctl *AttractionController) List(c *gin.Context) {
	page, limit := pageParams(c)
	f := repository.AttractionFilter{
		Search:    c.Query("search"),
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

// GET /api/attractions/nearby?lat=&lng=&radius=
func (ctl *AttractionController) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		resp.BadRequest(c, "lat and lng are required")
		return
	}
	radius, _ := strconv.ParseFloat(c.Query("radius"), 64)

	items, err := ctl.Service.FindNearby(lat, lng, radius)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/attractions/:id
func (ctl *AttractionController) Detail(c *gin.Context) {
	a, err := ctl.Service.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, a)
}
