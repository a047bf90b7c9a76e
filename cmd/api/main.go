package main

import (
	"context"
	"log"

	"github.com/ascend-community/backend/config"
	"github.com/ascend-community/backend/internal/api"
	"github.com/ascend-community/backend/internal/database"
	"github.com/ascend-community/backend/internal/router"
	"github.com/ascend-community/backend/internal/server"
	"github.com/ascend-community/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ctx := context.Background()

	s3Cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	var archiver service.Archiver
	if s3Cfg != nil {
		archiver = service.NewArchiveService(s3Cfg)
	} else {
		log.Printf("Plan archiving disabled (no S3_ARCHIVE_BUCKET configured)")
	}

	tokenService := service.NewTokenService(cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	ingredientService := service.NewIngredientService(db, redisClient)
	if err := ingredientService.Reload(ctx); err != nil {
		log.Fatalf("Failed to load ingredient facts: %v", err)
	}
	planService := service.NewPlanService(db, ingredientService, profileService, archiver, redisClient)

	engine := router.SetupRouter(
		api.NewPlanHandler(planService),
		api.NewIngredientHandler(ingredientService),
		api.NewProfileHandler(profileService),
		tokenService,
		redisClient,
	)

	srv := server.NewServer(engine, planService)
	if err := srv.Start(cfg.ServerHost, cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
