package controllers

import (
	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Service: s}
}

// GET /api/location-of-month
func (ctl *PromotionController) GetLocationOfMonth(c *gin.Context) {
	lom, err := ctl.Service.GetLocationOfMonth()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if lom == nil {
		resp.OK(c, nil)
		return
	}
	resp.OK(c, lom)
}
