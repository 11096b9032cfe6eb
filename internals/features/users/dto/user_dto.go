package dto

import (
	"time"

	"github.com/google/uuid"

	"pawmart_backend/internals/features/users/model"
)

/* ===================== Requests ===================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,max=100"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin volunteer"`
}

/* ===================== Responses ===================== */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		PhotoURL:  u.UserPhotoURL,
		Phone:     u.UserPhone,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
