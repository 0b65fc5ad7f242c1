package controllers

import (
	"time"

	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
)

type ContactClickController struct {
	Service *services.ContactClickService
}

func NewContactClickController(s *services.ContactClickService) *ContactClickController {
	return &ContactClickController{Service: s}
}

type RecordClickRequest struct {
	EntityType  string `json:"entityType" binding:"required"`
	EntityID    uint   `json:"entityId" binding:"required"`
	ContactType string `json:"contactType" binding:"required"`
}

// POST /api/contact-clicks (public, fired when a masked contact is revealed)
func (ctl *ContactClickController) Record(c *gin.Context) {
	var req RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Record(req.EntityType, req.EntityID, req.ContactType); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "recorded"})
}

// GET /api/admin/contact-clicks/stats?entityType=&from=&to=
func (ctl *ContactClickController) Stats(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			resp.BadRequest(c, "from must be an RFC3339 timestamp")
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			resp.BadRequest(c, "to must be an RFC3339 timestamp")
			return
		}
		to = &t
	}

	stats, err := ctl.Service.Stats(c.Query("entityType"), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}
