package api

import (
	"time"

	"userbase/internal/model"
)

// UserResponse is the outward user shape. No password field exists on it.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"6d9f2b3e-0c1a-4ff0-9a9e-3f6a1f2b4c5d"`
	Name      string    `json:"name" example:"Ana"`
	Email     string    `json:"email" example:"ana@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
