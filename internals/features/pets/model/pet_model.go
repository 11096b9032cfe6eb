package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	PetStatusAvailable = "available"
	PetStatusAdopted   = "adopted"
)

/* ===================== Model ===================== */

type Pet struct {
	PetID uuid.UUID `gorm:"column:pet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pet_id"`

	PetName        string  `gorm:"column:pet_name;type:varchar(100);not null" json:"pet_name"`
	PetSpecies     string  `gorm:"column:pet_species;type:varchar(60);not null;index" json:"pet_species"`
	PetBreed       *string `gorm:"column:pet_breed;type:varchar(100)" json:"pet_breed,omitempty"`
	PetAgeMonths   *int    `gorm:"column:pet_age_months" json:"pet_age_months,omitempty"`
	PetDescription *string `gorm:"column:pet_description;type:text" json:"pet_description,omitempty"`
	PetImageURL    *string `gorm:"column:pet_image_url;type:text" json:"pet_image_url,omitempty"`

	// Email of the account that listed the pet; relationships stay
	// informal, resolved per request.
	PetListerEmail string `gorm:"column:pet_lister_email;type:varchar(120);not null;index" json:"pet_lister_email"`

	PetStatus string `gorm:"column:pet_status;type:varchar(20);not null;default:'available';index" json:"status"`

	// Attached once, by the success callback of an adoption checkout.
	PetAdoptionDetails datatypes.JSON `gorm:"column:pet_adoption_details;type:jsonb" json:"adoptionDetails,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Pet) TableName() string { return "pets" }

/* ===================== Adoption details ===================== */

type AdoptionDetails struct {
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TranID        string    `json:"tran_id"`
	AdoptedAt     time.Time `json:"adopted_at"`
}

func MarshalAdoptionDetails(d AdoptionDetails) datatypes.JSON {
	raw, _ := json.Marshal(d)
	return raw
}
