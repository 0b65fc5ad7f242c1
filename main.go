package main

import (
	"fmt"

	"github.com/catx7/visit-borsa-sub000/configs"
	"github.com/catx7/visit-borsa-sub000/middlewares"
	"github.com/catx7/visit-borsa-sub000/pkg/observability"
	"github.com/catx7/visit-borsa-sub000/routes"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()
	observability.SetupLogger(cfg.AppEnv)

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if err := configs.SeedAttractions(); err != nil {
		log.Fatal().Err(err).Msg("seed attractions failed")
	}

	storage, err := services.NewImageStorage(cfg.CloudinaryURL, cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("image storage init failed")
	}

	// HTTP
	if cfg.AppEnv != "dev" && cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(observability.Metrics())

	// Serve locally stored listing images
	r.Static("/api/uploads", "./"+cfg.UploadDir)
	r.GET("/metrics", observability.Handler())

	routes.RegisterRoutes(r, db, cfg, storage)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
