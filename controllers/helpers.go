package controllers

import (
	"errors"
	"strconv"

	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	return page, limit
}

func floatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

func pagedResponse(items any, total int64, page, limit int) gin.H {
	return gin.H{
		"items":      items,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	}
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "you do not own this listing")
	case errors.Is(err, services.ErrNoImages),
		errors.Is(err, services.ErrTooManyPromoted),
		errors.Is(err, services.ErrNotApproved),
		errors.Is(err, services.ErrDuplicatePromoted),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidEntityType),
		errors.Is(err, services.ErrInvalidContactType),
		errors.Is(err, services.ErrInvalidPropertyType),
		errors.Is(err, services.ErrInvalidRentalType),
		errors.Is(err, services.ErrInvalidPriceRange):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
