package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rana-danish-se/naqvix-server/media"
	"github.com/rana-danish-se/naqvix-server/models"
	"github.com/rana-danish-se/naqvix-server/utils"
)

// BlogController manages CRUD for blog posts and their attached images.
type BlogController struct {
	db    *gorm.DB
	media *media.Manager
}

// NewBlogController creates a new BlogController instance.
func NewBlogController(db *gorm.DB, gw media.Gateway) *BlogController {
	return &BlogController{
		db:    db,
		media: media.NewManager(gw, media.Policy{Folder: "blogs", MaxFiles: 4, RequireOnCreate: true}, utils.Sugar),
	}
}

// CreateBlog creates a blog post from a multipart form with 1..4 images.
func (b *BlogController) CreateBlog(ctx *gin.Context) {
	title := utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	subtitle := utils.Sanitize(strings.TrimSpace(ctx.PostForm("subtitle")))
	description := utils.Sanitize(ctx.PostForm("description"))
	category := strings.TrimSpace(ctx.PostForm("category"))

	if title == "" || subtitle == "" || description == "" || category == "" {
		utils.Error(ctx, http.StatusBadRequest, 40110, "all required fields must be filled")
		return
	}

	images, err := b.media.CollectUploads(ctx.Request.Context(), formFiles(ctx, "images"))
	if err != nil {
		abortOnMediaError(ctx, err, 40111, 50110)
		return
	}

	blog := models.Blog{
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
		Category:    category,
		Images:      images,
	}
	if err := b.db.Create(&blog).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50111, "failed to create blog")
		return
	}

	utils.InvalidateByPrefix("cache:blogs:list:")
	utils.Created(ctx, gin.H{"blog": blog})
}

// ListBlogs returns paginated blog posts, optionally filtered by a search
// term and a category ("all" disables the category filter).
func (b *BlogController) ListBlogs(ctx *gin.Context) {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	search := strings.TrimSpace(ctx.Query("search"))
	category := strings.TrimSpace(ctx.Query("category"))
	if category == "" {
		category = "all"
	}

	// Cache only search-less lists to avoid cache key explosion.
	cacheKey := fmt.Sprintf("cache:blogs:list:cat=%s:page=%d:size=%d", category, page, limit)
	if search == "" {
		if cached, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	query := b.db.Model(&models.Blog{}).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR subtitle LIKE ? OR description LIKE ?", like, like, like)
	}
	if category != "all" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50112, "failed to count blogs")
		return
	}
	var blogs []models.Blog
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&blogs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50113, "failed to list blogs")
		return
	}

	payload := pageEnvelope(blogs, page, limit, total)
	if search == "" {
		utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	}
	utils.Success(ctx, payload)
}

// GetBlog returns a single blog post by id.
func (b *BlogController) GetBlog(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40112, "invalid blog id format")
		return
	}

	cacheKey := "cache:blog:detail:" + strconv.FormatUint(uint64(id), 10)
	if cached, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", cached)
		return
	}

	var blog models.Blog
	if err := b.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "blog not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50114, "failed to load blog")
		return
	}

	payload := gin.H{"blog": blog}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// UpdateBlog reconciles attached images against the submitted keep-list
// (existingImages) plus any new files, then updates scalar fields.
func (b *BlogController) UpdateBlog(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40113, "invalid blog id format")
		return
	}

	var blog models.Blog
	if err := b.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40411, "blog not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50115, "failed to load blog")
		return
	}

	images, err := b.media.Reconcile(
		ctx.Request.Context(),
		blog.Images,
		ctx.PostFormArray("existingImages"),
		formFiles(ctx, "images"),
	)
	if err != nil {
		abortOnMediaError(ctx, err, 40114, 50116)
		return
	}

	blog.Images = images
	blog.Title = utils.Sanitize(orKeep(ctx.PostForm("title"), blog.Title))
	blog.Subtitle = utils.Sanitize(orKeep(ctx.PostForm("subtitle"), blog.Subtitle))
	blog.Description = utils.Sanitize(orKeep(ctx.PostForm("description"), blog.Description))
	blog.Category = orKeep(ctx.PostForm("category"), blog.Category)

	if err := b.db.Save(&blog).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50117, "failed to update blog")
		return
	}

	utils.InvalidateByPrefix("cache:blogs:list:")
	utils.InvalidateByPrefix("cache:blog:detail:" + strconv.FormatUint(uint64(id), 10))
	utils.Success(ctx, gin.H{"blog": blog})
}

// DeleteBlog removes the blog and cascades deletion of its stored images.
func (b *BlogController) DeleteBlog(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40115, "invalid blog id format")
		return
	}

	var blog models.Blog
	if err := b.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40412, "blog not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50118, "failed to load blog")
		return
	}

	b.media.CascadeDelete(ctx.Request.Context(), blog.Images)
	if err := b.db.Delete(&blog).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50119, "failed to delete blog")
		return
	}

	utils.InvalidateByPrefix("cache:blogs:list:")
	utils.InvalidateByPrefix("cache:blog:detail:" + strconv.FormatUint(uint64(id), 10))
	utils.Success(ctx, gin.H{"message": "blog deleted", "blog": blog})
}

// abortOnMediaError maps media lifecycle errors onto the response envelope.
// Validation failures are 400; everything else is a provider failure.
func abortOnMediaError(ctx *gin.Context, err error, badReqCode, providerCode int) {
	if errors.Is(err, media.ErrMediaRequired) || errors.Is(err, media.ErrTooManyFiles) {
		utils.Error(ctx, http.StatusBadRequest, badReqCode, err.Error())
		return
	}
	if utils.Sugar != nil {
		utils.Sugar.Errorw("media upload failed", "err", err)
	}
	utils.Error(ctx, http.StatusInternalServerError, providerCode, "failed to store media")
}
