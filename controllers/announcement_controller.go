package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rana-danish-se/naqvix-server/models"
	"github.com/rana-danish-se/naqvix-server/utils"
)

// AnnouncementController manages CRUD for announcements. Announcements carry
// no media; they are plain JSON resources with a generated slug.
type AnnouncementController struct {
	db *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{db: db}
}

// CreateAnnouncement creates an announcement and derives its slug.
func (a *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,min=1,max=150"`
		Description string `json:"description" binding:"required"`
		Link        string `json:"link"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40140, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40141, "title cannot be empty")
		return
	}

	ann := models.Announcement{
		Title:       title,
		Description: utils.Sanitize(req.Description),
		Link:        strings.TrimSpace(req.Link),
		Slug:        utils.MakeSlug(title),
	}
	if err := a.db.Create(&ann).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50140, "failed to create announcement")
		return
	}
	utils.Created(ctx, gin.H{"announcement": ann})
}

// ListAnnouncements returns paginated announcements, newest first.
func (a *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := a.db.Model(&models.Announcement{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50141, "failed to count announcements")
		return
	}
	var items []models.Announcement
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50142, "failed to list announcements")
		return
	}
	utils.Success(ctx, pageEnvelope(items, page, limit, total))
}

// GetAnnouncement returns a single announcement by id.
func (a *AnnouncementController) GetAnnouncement(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40142, "invalid announcement id format")
		return
	}

	var ann models.Announcement
	if err := a.db.First(&ann, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "announcement not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50143, "failed to load announcement")
		return
	}
	utils.Success(ctx, gin.H{"announcement": ann})
}

// UpdateAnnouncement updates scalar fields; absent fields keep their value.
// The slug is stable across title edits so shared links do not break.
func (a *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40143, "invalid announcement id format")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40144, "invalid request payload")
		return
	}

	var ann models.Announcement
	if err := a.db.First(&ann, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40441, "announcement not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50144, "failed to load announcement")
		return
	}

	ann.Title = utils.Sanitize(orKeep(req.Title, ann.Title))
	ann.Description = utils.Sanitize(orKeep(req.Description, ann.Description))
	ann.Link = orKeep(req.Link, ann.Link)

	if err := a.db.Save(&ann).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50145, "failed to update announcement")
		return
	}
	utils.Success(ctx, gin.H{"announcement": ann})
}

// DeleteAnnouncement removes an announcement.
func (a *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40145, "invalid announcement id format")
		return
	}

	var ann models.Announcement
	if err := a.db.First(&ann, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40442, "announcement not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50146, "failed to load announcement")
		return
	}
	if err := a.db.Delete(&ann).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50147, "failed to delete announcement")
		return
	}
	utils.Success(ctx, gin.H{"message": "announcement deleted"})
}
