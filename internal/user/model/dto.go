// Package model provides domain models and DTOs for user module.
package model

// RegisterRequest represents the request to register a new user.
// The password is an opaque credential handled by the identity
// provider; this service only stores it.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// NewUserResponse maps a user entity to its API shape.
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
