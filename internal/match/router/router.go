// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fivekicks/football/internal/match/handler"
	"github.com/fivekicks/football/internal/match/repository"
	"github.com/fivekicks/football/internal/match/service"
	"github.com/fivekicks/football/internal/middleware"
	"github.com/fivekicks/football/internal/standings"
	teamRepository "github.com/fivekicks/football/internal/team/repository"
	userModel "github.com/fivekicks/football/internal/user/model"
)

// RegisterRoutes registers match module routes. Match administration
// (scheduling, status transitions, scoring) is restricted to admins.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, standingsSvc standings.Service, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	teamRepo := teamRepository.New(db)
	svc := service.New(repo, teamRepo, standingsSvc, db, logger)
	h := handler.New(svc, logger)

	r.GET("/matches/:id", h.Get)

	admin := r.Group("/matches",
		middleware.RequireIdentity(),
		middleware.RequireRole(string(userModel.RoleAdmin)),
	)
	admin.POST("", h.Schedule)
	admin.POST("/:id/start", h.Start)
	admin.POST("/:id/cancel", h.Cancel)
	admin.POST("/:id/events", h.RecordEvent)
	admin.POST("/:id/finish", h.Finish)
}
