// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	appConfig "github.com/fivekicks/football/internal/config"
	"github.com/fivekicks/football/internal/database"
	"github.com/fivekicks/football/internal/database/migrate"
	"github.com/fivekicks/football/internal/health"
	matchRouter "github.com/fivekicks/football/internal/match/router"
	"github.com/fivekicks/football/internal/middleware"
	"github.com/fivekicks/football/internal/seed"
	"github.com/fivekicks/football/internal/standings"
	teamRouter "github.com/fivekicks/football/internal/team/router"
	tournamentRouter "github.com/fivekicks/football/internal/tournament/router"
	userRouter "github.com/fivekicks/football/internal/user/router"
	"github.com/fivekicks/football/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	if cfg.League.SeedDemo {
		if err := seed.Tournaments(context.Background(), db, cfg.League, appLogger); err != nil {
			appLogger.Fatalw("failed to seed demo data", "error", err)
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	standingsSvc := standings.New(db, standings.Points{
		Win:  cfg.League.PointsPerWin,
		Draw: cfg.League.PointsPerDraw,
	}, appLogger)

	userRouter.RegisterRoutes(r, db, appLogger)
	teamRouter.RegisterRoutes(r, db, standingsSvc, appLogger)
	tournamentRouter.RegisterRoutes(r, db, cfg.League, appLogger)
	matchRouter.RegisterRoutes(r, db, standingsSvc, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("server failed", "error", err)
	}
}
