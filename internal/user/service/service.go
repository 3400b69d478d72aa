// Package service provides business logic layer for user module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	userModel "github.com/fivekicks/football/internal/user/model"
	"github.com/fivekicks/football/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Register creates a new user with the USER role.
	Register(ctx context.Context, req *userModel.RegisterRequest) (*userModel.UserResponse, error)

	// GetByEmail returns the user with the given email.
	GetByEmail(ctx context.Context, email string) (*userModel.UserResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Register creates a new user with the USER role. The email must be
// unique; the password is stored opaque and never interpreted here.
func (s *service) Register(ctx context.Context, req *userModel.RegisterRequest) (*userModel.UserResponse, error) {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, userModel.ErrInvalidEmail
	}
	if req.FullName == "" {
		return nil, userModel.ErrInvalidFullName
	}

	user := &userModel.User{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     userModel.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID, "email", user.Email)
	return userModel.NewUserResponse(user), nil
}

// GetByEmail returns the user with the given email.
func (s *service) GetByEmail(ctx context.Context, email string) (*userModel.UserResponse, error) {
	if email == "" {
		return nil, userModel.ErrInvalidEmail
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return userModel.NewUserResponse(user), nil
}
