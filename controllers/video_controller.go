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

// VideoController manages CRUD for YouTube video references. The video id and
// thumbnail are derived server-side from the submitted URL.
type VideoController struct {
	db *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{db: db}
}

// CreateVideo registers a video.
func (v *VideoController) CreateVideo(ctx *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,min=1,max=150"`
		Description string `json:"description"`
		YouTubeURL  string `json:"youtube_url" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40150, "invalid request payload")
		return
	}

	ytID := utils.ExtractYouTubeID(req.YouTubeURL)
	video := models.Video{
		Title:        utils.Sanitize(strings.TrimSpace(req.Title)),
		Description:  utils.Sanitize(req.Description),
		YouTubeURL:   strings.TrimSpace(req.YouTubeURL),
		YouTubeID:    ytID,
		ThumbnailURL: utils.YouTubeThumbnail(ytID),
	}
	if err := v.db.Create(&video).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50150, "failed to create video")
		return
	}
	utils.Created(ctx, gin.H{"video": video})
}

// ListVideos returns paginated videos, newest first.
func (v *VideoController) ListVideos(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := v.db.Model(&models.Video{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50151, "failed to count videos")
		return
	}
	var videos []models.Video
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&videos).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50152, "failed to list videos")
		return
	}
	utils.Success(ctx, pageEnvelope(videos, page, limit, total))
}

// GetVideo returns a single video by id.
func (v *VideoController) GetVideo(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40151, "invalid video id format")
		return
	}

	var video models.Video
	if err := v.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40450, "video not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50153, "failed to load video")
		return
	}
	utils.Success(ctx, gin.H{"video": video})
}

// UpdateVideo updates fields; a new URL re-derives id and thumbnail.
func (v *VideoController) UpdateVideo(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40152, "invalid video id format")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		YouTubeURL  string `json:"youtube_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40153, "invalid request payload")
		return
	}

	var video models.Video
	if err := v.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40451, "video not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50154, "failed to load video")
		return
	}

	video.Title = utils.Sanitize(orKeep(req.Title, video.Title))
	video.Description = utils.Sanitize(orKeep(req.Description, video.Description))
	if url := strings.TrimSpace(req.YouTubeURL); url != "" {
		ytID := utils.ExtractYouTubeID(url)
		video.YouTubeURL = url
		video.YouTubeID = ytID
		video.ThumbnailURL = utils.YouTubeThumbnail(ytID)
	}

	if err := v.db.Save(&video).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50155, "failed to update video")
		return
	}
	utils.Success(ctx, gin.H{"video": video})
}

// DeleteVideo removes a video reference.
func (v *VideoController) DeleteVideo(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40154, "invalid video id format")
		return
	}

	var video models.Video
	if err := v.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40452, "video not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50156, "failed to load video")
		return
	}
	if err := v.db.Delete(&video).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50157, "failed to delete video")
		return
	}
	utils.Success(ctx, gin.H{"message": "video deleted"})
}
