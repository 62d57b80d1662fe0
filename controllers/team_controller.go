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

// TeamController manages CRUD for team members. Each member carries exactly
// one portrait image; uploading a new one on update replaces the old.
type TeamController struct {
	db    *gorm.DB
	media *media.Manager
}

func NewTeamController(db *gorm.DB, gw media.Gateway) *TeamController {
	return &TeamController{
		db:    db,
		media: media.NewManager(gw, media.Policy{Folder: "team", MaxFiles: 1, RequireOnCreate: true}, utils.Sugar),
	}
}

// CreateTeamMember creates a member from a multipart form with one image.
func (t *TeamController) CreateTeamMember(ctx *gin.Context) {
	name := utils.Sanitize(strings.TrimSpace(ctx.PostForm("name")))
	designation := utils.Sanitize(strings.TrimSpace(ctx.PostForm("designation")))
	if name == "" || designation == "" {
		utils.Error(ctx, http.StatusBadRequest, 40130, "name and designation are required")
		return
	}

	image, err := t.media.CollectUploads(ctx.Request.Context(), formFiles(ctx, "image"))
	if err != nil {
		abortOnMediaError(ctx, err, 40131, 50130)
		return
	}

	member := models.TeamMember{
		Name:        name,
		Designation: designation,
		Image:       image,
	}
	if err := t.db.Create(&member).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50131, "failed to create team member")
		return
	}
	utils.Created(ctx, gin.H{"member": member})
}

// ListTeamMembers returns paginated members.
func (t *TeamController) ListTeamMembers(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := t.db.Model(&models.TeamMember{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR designation LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50132, "failed to count team members")
		return
	}
	var members []models.TeamMember
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&members).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50133, "failed to list team members")
		return
	}
	utils.Success(ctx, pageEnvelope(members, page, limit, total))
}

// GetTeamMember returns a single member by id.
func (t *TeamController) GetTeamMember(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40132, "invalid team member id format")
		return
	}

	var member models.TeamMember
	if err := t.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "team member not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50134, "failed to load team member")
		return
	}
	utils.Success(ctx, gin.H{"member": member})
}

// UpdateTeamMember updates fields; a newly uploaded image replaces the
// current one, whose stored object is then deleted best-effort.
func (t *TeamController) UpdateTeamMember(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40133, "invalid team member id format")
		return
	}

	var member models.TeamMember
	if err := t.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40431, "team member not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50135, "failed to load team member")
		return
	}

	if files := formFiles(ctx, "image"); len(files) > 0 {
		// no keep-list here: a new portrait always supersedes the old one
		image, err := t.media.Reconcile(ctx.Request.Context(), member.Image, nil, files)
		if err != nil {
			abortOnMediaError(ctx, err, 40134, 50136)
			return
		}
		member.Image = image
	}

	member.Name = utils.Sanitize(orKeep(ctx.PostForm("name"), member.Name))
	member.Designation = utils.Sanitize(orKeep(ctx.PostForm("designation"), member.Designation))

	if err := t.db.Save(&member).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50137, "failed to update team member")
		return
	}
	utils.Success(ctx, gin.H{"member": member})
}

// DeleteTeamMember removes the member and the stored portrait.
func (t *TeamController) DeleteTeamMember(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40135, "invalid team member id format")
		return
	}

	var member models.TeamMember
	if err := t.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40432, "team member not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50138, "failed to load team member")
		return
	}

	t.media.CascadeDelete(ctx.Request.Context(), member.Image)
	if err := t.db.Delete(&member).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50139, "failed to delete team member")
		return
	}
	utils.Success(ctx, gin.H{"message": "team member deleted"})
}
