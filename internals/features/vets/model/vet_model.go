package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Vet struct {
	VetID uuid.UUID `gorm:"column:vet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vet_id"`

	VetName        string          `gorm:"column:vet_name;type:varchar(120);not null" json:"vet_name"`
	VetEmail       string          `gorm:"column:vet_email;type:varchar(120);not null;uniqueIndex" json:"vet_email"`
	VetPhone       *string         `gorm:"column:vet_phone;type:varchar(30)" json:"vet_phone,omitempty"`
	VetClinicName  *string         `gorm:"column:vet_clinic_name;type:varchar(160)" json:"vet_clinic_name,omitempty"`
	VetLocation    *string         `gorm:"column:vet_location;type:varchar(200)" json:"vet_location,omitempty"`
	VetSpecialties pq.StringArray  `gorm:"column:vet_specialties;type:text[]" json:"vet_specialties,omitempty"`
	VetFee         decimal.Decimal `gorm:"column:vet_fee;type:numeric(12,2);not null" json:"vet_fee"`
	VetImageURL    *string         `gorm:"column:vet_image_url;type:text" json:"vet_image_url,omitempty"`
	VetIsActive    bool            `gorm:"column:vet_is_active;not null;default:true" json:"vet_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Vet) TableName() string { return "vets" }
