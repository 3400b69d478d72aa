// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	userModel "github.com/fivekicks/football/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *userModel.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id uint) (*userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)

	// UpdateRole sets the role of a user.
	UpdateRole(ctx context.Context, id uint, role userModel.Role) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *userModel.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return userModel.ErrEmailTaken
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateRole sets the role of a user.
func (r *repository) UpdateRole(ctx context.Context, id uint, role userModel.Role) error {
	result := r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return userModel.ErrUserNotFound
	}
	return nil
}
