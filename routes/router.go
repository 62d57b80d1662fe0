package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rana-danish-se/naqvix-server/config"
	"github.com/rana-danish-se/naqvix-server/controllers"
	"github.com/rana-danish-se/naqvix-server/media"
	"github.com/rana-danish-se/naqvix-server/middleware"
	"github.com/rana-danish-se/naqvix-server/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, gw media.Gateway) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger(utils.Logger))
	r.Use(utils.RecoveryWithZap(utils.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	blogController := controllers.NewBlogController(db, gw)
	galleryController := controllers.NewGalleryController(db, gw)
	teamController := controllers.NewTeamController(db, gw)
	announcementController := controllers.NewAnnouncementController(db)
	videoController := controllers.NewVideoController(db)
	eventController := controllers.NewEventController(db, gw)

	api := r.Group("/api")

	// writes share a rate limit; reads stay unthrottled
	write := api.Group("")
	write.Use(middleware.RateLimitMiddleware())

	api.GET("/blogs", blogController.ListBlogs)
	api.GET("/blogs/:id", blogController.GetBlog)
	write.POST("/blogs", blogController.CreateBlog)
	write.PUT("/blogs/:id", blogController.UpdateBlog)
	write.DELETE("/blogs/:id", blogController.DeleteBlog)

	api.GET("/gallery", galleryController.ListGalleries)
	api.GET("/gallery/:id", galleryController.GetGallery)
	write.POST("/gallery", galleryController.CreateGallery)
	write.PUT("/gallery/:id", galleryController.UpdateGallery)
	write.DELETE("/gallery/:id", galleryController.DeleteGallery)

	api.GET("/team", teamController.ListTeamMembers)
	api.GET("/team/:id", teamController.GetTeamMember)
	write.POST("/team", teamController.CreateTeamMember)
	write.PUT("/team/:id", teamController.UpdateTeamMember)
	write.DELETE("/team/:id", teamController.DeleteTeamMember)

	api.GET("/announcements", announcementController.ListAnnouncements)
	api.GET("/announcements/:id", announcementController.GetAnnouncement)
	write.POST("/announcements", announcementController.CreateAnnouncement)
	write.PUT("/announcements/:id", announcementController.UpdateAnnouncement)
	write.DELETE("/announcements/:id", announcementController.DeleteAnnouncement)

	api.GET("/videos", videoController.ListVideos)
	api.GET("/videos/:id", videoController.GetVideo)
	write.POST("/videos", videoController.CreateVideo)
	write.PUT("/videos/:id", videoController.UpdateVideo)
	write.DELETE("/videos/:id", videoController.DeleteVideo)

	api.GET("/events", eventController.ListEvents)
	api.GET("/events/:id", eventController.GetEvent)
	api.GET("/events/slug/:slug", eventController.GetEventBySlug)
	write.POST("/events", eventController.CreateEvent)
	write.PUT("/events/:id", eventController.UpdateEvent)
	write.DELETE("/events/:id", eventController.DeleteEvent)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
	})

	return r
}
