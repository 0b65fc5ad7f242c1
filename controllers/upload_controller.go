package controllers

import (
	"github.com/catx7/visit-borsa-sub000/pkg/resp"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Storage services.ImageStorage
}

func NewUploadController(storage services.ImageStorage) *UploadController {
	return &UploadController{Storage: storage}
}

// POST /api/upload/image (multipart field "image")
func (ctl *UploadController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	if err := services.ValidateImage(fh); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	url, err := ctl.Storage.Save(c.Request.Context(), fh)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}

// POST /api/upload/images (multipart field "images", max 8 files)
func (ctl *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		resp.BadRequest(c, "at least one image file is required")
		return
	}
	if len(files) > services.MaxBatchImages {
		resp.BadRequest(c, "Maximum 8 images per upload")
		return
	}

	// Validate the whole batch before touching storage so a rejected
	// request persists nothing.
	for _, fh := range files {
		if err := services.ValidateImage(fh); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := ctl.Storage.Save(c.Request.Context(), fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		urls = append(urls, url)
	}
	resp.Created(c, gin.H{"urls": urls})
}
