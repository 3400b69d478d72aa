// Package router provides tournament module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/fivekicks/football/internal/config"
	"github.com/fivekicks/football/internal/middleware"
	teamRepository "github.com/fivekicks/football/internal/team/repository"
	"github.com/fivekicks/football/internal/tournament/handler"
	"github.com/fivekicks/football/internal/tournament/repository"
	"github.com/fivekicks/football/internal/tournament/service"
	userModel "github.com/fivekicks/football/internal/user/model"
)

// RegisterRoutes registers tournament module routes. Creation and
// lifecycle transitions are restricted to admins; joining requires an
// authenticated caller.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, league appConfig.LeagueConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	teamRepo := teamRepository.New(db)
	svc := service.New(repo, teamRepo, db, league, logger)
	h := handler.New(svc, logger)

	r.GET("/tournaments", h.List)
	r.POST("/tournaments/:id/join", middleware.RequireIdentity(), h.Join)

	admin := r.Group("/tournaments",
		middleware.RequireIdentity(),
		middleware.RequireRole(string(userModel.RoleAdmin)),
	)
	admin.POST("", h.Create)
	admin.POST("/:id/advance", h.Advance)
}
