package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"dev@example.com"`
	Name     string `json:"name" binding:"required,max=255" example:"Dana Developer"`
	Password string `json:"password" binding:"required,max=72" example:"correct horse"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"dev@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse"`
}

// UserResponse is the public view of a user; it never includes the password hash
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a domain.User into its public view
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
