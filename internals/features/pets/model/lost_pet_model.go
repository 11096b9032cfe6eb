package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LostPetStatusLost     = "lost"
	LostPetStatusFound    = "found"
	LostPetStatusReunited = "reunited"
)

type LostPetReport struct {
	LostPetID uuid.UUID `gorm:"column:lost_pet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lost_pet_id"`

	LostPetName        string  `gorm:"column:lost_pet_name;type:varchar(100);not null" json:"lost_pet_name"`
	LostPetSpecies     string  `gorm:"column:lost_pet_species;type:varchar(60);not null" json:"lost_pet_species"`
	LostPetDescription *string `gorm:"column:lost_pet_description;type:text" json:"lost_pet_description,omitempty"`
	LostPetImageURL    *string `gorm:"column:lost_pet_image_url;type:text" json:"lost_pet_image_url,omitempty"`

	LostPetLastSeenLocation string     `gorm:"column:lost_pet_last_seen_location;type:text;not null" json:"lost_pet_last_seen_location"`
	LostPetLastSeenAt       *time.Time `gorm:"column:lost_pet_last_seen_at" json:"lost_pet_last_seen_at,omitempty"`

	LostPetContactName  string  `gorm:"column:lost_pet_contact_name;type:varchar(100);not null" json:"lost_pet_contact_name"`
	LostPetContactEmail string  `gorm:"column:lost_pet_contact_email;type:varchar(120);not null;index" json:"lost_pet_contact_email"`
	LostPetContactPhone *string `gorm:"column:lost_pet_contact_phone;type:varchar(30)" json:"lost_pet_contact_phone,omitempty"`

	LostPetStatus string `gorm:"column:lost_pet_status;type:varchar(20);not null;default:'lost';index" json:"lost_pet_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (LostPetReport) TableName() string { return "lost_pet_reports" }
