package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	UserRoleUser      = "user"
	UserRoleAdmin     = "admin"
	UserRoleVolunteer = "volunteer"
)

/* ===================== Model ===================== */

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;unique" json:"user_email"`

	// bcrypt hash; empty for Google-provisioned accounts
	UserPassword string `gorm:"column:user_password;type:varchar(100)" json:"-"`

	UserRole     string  `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`
	UserPhotoURL *string `gorm:"column:user_photo_url;type:text" json:"user_photo_url,omitempty"`
	UserPhone    *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// set for accounts created through Google sign-in
	UserGoogleSub *string `gorm:"column:user_google_sub;type:varchar(120);uniqueIndex" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "users" }
