package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rana-danish-se/naqvix-server/media"
	"github.com/rana-danish-se/naqvix-server/models"
	"github.com/rana-danish-se/naqvix-server/utils"
)

// GalleryController manages CRUD for gallery albums.
type GalleryController struct {
	db    *gorm.DB
	media *media.Manager
}

func NewGalleryController(db *gorm.DB, gw media.Gateway) *GalleryController {
	return &GalleryController{
		db:    db,
		media: media.NewManager(gw, media.Policy{Folder: "gallery", MaxFiles: 5, RequireOnCreate: true}, utils.Sugar),
	}
}

// CreateGallery creates an album from a multipart form with 1..5 images.
func (g *GalleryController) CreateGallery(ctx *gin.Context) {
	title := utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40120, "title cannot be empty")
		return
	}

	images, err := g.media.CollectUploads(ctx.Request.Context(), formFiles(ctx, "images"))
	if err != nil {
		abortOnMediaError(ctx, err, 40121, 50120)
		return
	}

	gallery := models.Gallery{
		Title:       title,
		Description: utils.Sanitize(ctx.PostForm("description")),
		Link:        strings.TrimSpace(ctx.PostForm("link")),
		Images:      images,
	}
	if err := g.db.Create(&gallery).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50121, "failed to create gallery")
		return
	}

	utils.Created(ctx, gin.H{"gallery": gallery})
}

// ListGalleries returns paginated albums, newest first.
func (g *GalleryController) ListGalleries(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := g.db.Model(&models.Gallery{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50122, "failed to count galleries")
		return
	}
	var galleries []models.Gallery
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&galleries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50123, "failed to list galleries")
		return
	}

	utils.Success(ctx, pageEnvelope(galleries, page, limit, total))
}

// GetGallery returns a single album by id.
func (g *GalleryController) GetGallery(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40122, "invalid gallery id format")
		return
	}

	var gallery models.Gallery
	if err := g.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "gallery not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50124, "failed to load gallery")
		return
	}
	utils.Success(ctx, gin.H{"gallery": gallery})
}

// UpdateGallery reconciles album images and updates scalar fields.
func (g *GalleryController) UpdateGallery(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40123, "invalid gallery id format")
		return
	}

	var gallery models.Gallery
	if err := g.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40421, "gallery not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50125, "failed to load gallery")
		return
	}

	images, err := g.media.Reconcile(
		ctx.Request.Context(),
		gallery.Images,
		ctx.PostFormArray("existingImages"),
		formFiles(ctx, "images"),
	)
	if err != nil {
		abortOnMediaError(ctx, err, 40124, 50126)
		return
	}

	gallery.Images = images
	gallery.Title = utils.Sanitize(orKeep(ctx.PostForm("title"), gallery.Title))
	gallery.Description = utils.Sanitize(orKeep(ctx.PostForm("description"), gallery.Description))
	gallery.Link = orKeep(ctx.PostForm("link"), gallery.Link)

	if err := g.db.Save(&gallery).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50127, "failed to update gallery")
		return
	}
	utils.Success(ctx, gin.H{"gallery": gallery})
}

// DeleteGallery removes the album and cascades deletion of stored images.
func (g *GalleryController) DeleteGallery(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40125, "invalid gallery id format")
		return
	}

	var gallery models.Gallery
	if err := g.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40422, "gallery not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50128, "failed to load gallery")
		return
	}

	g.media.CascadeDelete(ctx.Request.Context(), gallery.Images)
	if err := g.db.Delete(&gallery).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50129, "failed to delete gallery")
		return
	}
	utils.Success(ctx, gin.H{"message": "gallery deleted"})
}
