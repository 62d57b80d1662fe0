package main

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rana-danish-se/naqvix-server/config"
	"github.com/rana-danish-se/naqvix-server/media"
	"github.com/rana-danish-se/naqvix-server/models"
	"github.com/rana-danish-se/naqvix-server/routes"
	"github.com/rana-danish-se/naqvix-server/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.Blog{},
		&models.Gallery{},
		&models.TeamMember{},
		&models.Announcement{},
		&models.Video{},
		&models.Event{},
	)

	mc, err := minio.New(cfg.MediaEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Secure: cfg.MediaUseSSL,
	})
	if err != nil {
		utils.Sugar.Fatalf("media store client init failed: %v", err)
	}
	store := media.NewStore(mc, cfg.MediaBucket, cfg.MediaBaseURL)

	r := routes.SetupRouter(db, store)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
