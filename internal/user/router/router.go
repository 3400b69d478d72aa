// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fivekicks/football/internal/middleware"
	"github.com/fivekicks/football/internal/user/handler"
	"github.com/fivekicks/football/internal/user/repository"
	"github.com/fivekicks/football/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/users/register", h.Register)
	r.GET("/users/me", middleware.RequireIdentity(), h.Me)
}
