// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fivekicks/football/internal/middleware"
	"github.com/fivekicks/football/internal/standings"
	"github.com/fivekicks/football/internal/team/handler"
	"github.com/fivekicks/football/internal/team/repository"
	"github.com/fivekicks/football/internal/team/service"
	userModel "github.com/fivekicks/football/internal/user/model"
	userRepository "github.com/fivekicks/football/internal/user/repository"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, standingsSvc standings.Service, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	userRepo := userRepository.New(db)
	svc := service.New(repo, userRepo, db, logger)
	h := handler.New(svc, logger)
	sh := handler.NewStandings(standingsSvc, logger)

	teams := r.Group("/teams", middleware.RequireIdentity())
	teams.POST("", h.CreateTeam)
	teams.GET("/my", h.MyTeams)
	teams.POST("/:id/standings/rebuild",
		middleware.RequireRole(string(userModel.RoleAdmin)),
		sh.Rebuild,
	)
}
