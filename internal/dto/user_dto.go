package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/models"
)

// UserResponse exposes the account projection. Role is always derived
// from IsStaff; the password hash never leaves the model layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role(),
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsStaff  *bool   `json:"is_staff"`
}
