package dto

import (
	"time"

	"template-vault/internal/model"
)

// UserResponse 不含密碼欄位
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f"`
	Email     string    `json:"email" example:"a@b.com"`
	FirstName string    `json:"first_name" example:"Ann"`
	LastName  string    `json:"last_name" example:"Lee"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
