package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"gaon-interior/cmd/api/auth"
	"gaon-interior/cmd/api/router"
	"gaon-interior/cmd/api/services"
	"gaon-interior/config"
	"gaon-interior/db"
	"gaon-interior/internal/logger"
	"gaon-interior/migration"
	"gaon-interior/repositories"
	"gaon-interior/store"
)

// @title           Gaon Interior API
// @version         1.0
// @description     Content and admin API for the Gaon Interior marketing site
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	if err := db.Init(context.Background()); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	cfg := config.GetConfig()

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("failed to initialize JWT manager: %v", err)
		os.Exit(1)
	}

	insightRepo := repositories.NewInsightRepository(db.Database(), cfg.InsightCollection)
	projectRepo := repositories.NewProjectRepository(db.Database(), cfg.ProjectCollection)
	runner := migration.NewRunner(store.NewMongo(db.Client(), db.Database()), cfg.InsightCollection)

	r := router.New(router.Services{
		Insights:   services.NewInsightService(insightRepo),
		Projects:   services.NewProjectService(projectRepo),
		Admin:      services.NewAdminService(runner),
		JWTManager: jwtManager,
	})

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}
	handler := cors.New(corsOptions).Handler(r)

	logger.Log.Info("starting api server on :8080")
	if err := http.ListenAndServe(":8080", handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("api server stopped: %v", err)
		os.Exit(1)
	}
}
