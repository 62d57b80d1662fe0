package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rana-danish-se/naqvix-server/media"
	"github.com/rana-danish-se/naqvix-server/models"
	"github.com/rana-danish-se/naqvix-server/utils"
)

// EventController manages CRUD for community events. Events accept up to ten
// images but, unlike blogs and galleries, do not require any.
type EventController struct {
	db    *gorm.DB
	media *media.Manager
}

func NewEventController(db *gorm.DB, gw media.Gateway) *EventController {
	return &EventController{
		db:    db,
		media: media.NewManager(gw, media.Policy{Folder: "events", MaxFiles: 10}, utils.Sugar),
	}
}

// CreateEvent creates an event from a multipart form with 0..10 images.
func (e *EventController) CreateEvent(ctx *gin.Context) {
	title := utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40160, "title cannot be empty")
		return
	}

	images, err := e.media.CollectUploads(ctx.Request.Context(), formFiles(ctx, "images"))
	if err != nil {
		abortOnMediaError(ctx, err, 40161, 50160)
		return
	}

	event := models.Event{
		Title:       title,
		Description: utils.Sanitize(ctx.PostForm("description")),
		Location:    strings.TrimSpace(ctx.PostForm("location")),
		Featured:    ctx.PostForm("featured") == "true",
		Slug:        utils.MakeSlug(title),
		Images:      images,
	}
	if raw := strings.TrimSpace(ctx.PostForm("event_date")); raw != "" {
		when, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40162, "event_date must be RFC3339")
			return
		}
		event.EventDate = &when
	}

	if err := e.db.Create(&event).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50161, "failed to create event")
		return
	}
	utils.Created(ctx, gin.H{"event": event})
}

// ListEvents returns paginated events; featured=true narrows to featured.
func (e *EventController) ListEvents(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := e.db.Model(&models.Event{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR location LIKE ?", like, like, like)
	}
	if ctx.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50162, "failed to count events")
		return
	}
	var events []models.Event
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&events).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50163, "failed to list events")
		return
	}
	utils.Success(ctx, pageEnvelope(events, page, limit, total))
}

// GetEvent returns a single event by id.
func (e *EventController) GetEvent(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40163, "invalid event id format")
		return
	}

	var event models.Event
	if err := e.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "event not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50164, "failed to load event")
		return
	}
	utils.Success(ctx, gin.H{"event": event})
}

// GetEventBySlug returns a single event by its public slug.
func (e *EventController) GetEventBySlug(ctx *gin.Context) {
	slug := strings.TrimSpace(ctx.Param("slug"))
	if slug == "" {
		utils.Error(ctx, http.StatusBadRequest, 40164, "missing event slug")
		return
	}

	var event models.Event
	if err := e.db.Where("slug = ?", slug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40461, "event not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50165, "failed to load event")
		return
	}
	utils.Success(ctx, gin.H{"event": event})
}

// UpdateEvent reconciles event images and updates scalar fields.
func (e *EventController) UpdateEvent(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40165, "invalid event id format")
		return
	}

	var event models.Event
	if err := e.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40462, "event not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50166, "failed to load event")
		return
	}

	images, err := e.media.Reconcile(
		ctx.Request.Context(),
		event.Images,
		ctx.PostFormArray("existingImages"),
		formFiles(ctx, "images"),
	)
	if err != nil {
		abortOnMediaError(ctx, err, 40166, 50167)
		return
	}

	event.Images = images
	event.Title = utils.Sanitize(orKeep(ctx.PostForm("title"), event.Title))
	event.Description = utils.Sanitize(orKeep(ctx.PostForm("description"), event.Description))
	event.Location = orKeep(ctx.PostForm("location"), event.Location)
	if raw := ctx.PostForm("featured"); raw != "" {
		event.Featured = raw == "true"
	}
	if raw := strings.TrimSpace(ctx.PostForm("event_date")); raw != "" {
		when, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40167, "event_date must be RFC3339")
			return
		}
		event.EventDate = &when
	}

	if err := e.db.Save(&event).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50168, "failed to update event")
		return
	}
	utils.Success(ctx, gin.H{"event": event})
}

// DeleteEvent removes the event and cascades deletion of stored images.
func (e *EventController) DeleteEvent(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40168, "invalid event id format")
		return
	}

	var event models.Event
	if err := e.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40463, "event not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50169, "failed to load event")
		return
	}

	e.media.CascadeDelete(ctx.Request.Context(), event.Images)
	if err := e.db.Delete(&event).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50170, "failed to delete event")
		return
	}
	utils.Success(ctx, gin.H{"message": "event deleted"})
}
