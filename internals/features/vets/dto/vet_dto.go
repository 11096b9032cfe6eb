package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateVetRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Email       string          `json:"email" validate:"required,email"`
	Phone       *string         `json:"phone" validate:"omitempty,max=30"`
	ClinicName  *string         `json:"clinic_name" validate:"omitempty,max=160"`
	Location    *string         `json:"location" validate:"omitempty,max=200"`
	Specialties []string        `json:"specialties" validate:"omitempty,max=10,dive,max=60"`
	Fee         decimal.Decimal `json:"fee" validate:"required"`
	ImageURL    *string         `json:"image_url" validate:"omitempty,url"`
}

type UpdateVetRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=120"`
	Phone       *string          `json:"phone" validate:"omitempty,max=30"`
	ClinicName  *string          `json:"clinic_name" validate:"omitempty,max=160"`
	Location    *string          `json:"location" validate:"omitempty,max=200"`
	Specialties []string         `json:"specialties" validate:"omitempty,max=10,dive,max=60"`
	Fee         *decimal.Decimal `json:"fee"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
	IsActive    *bool            `json:"is_active"`
}

type CreateAppointmentRequest struct {
	VetID   string    `json:"vet_id" validate:"required,uuid4"`
	PetName string    `json:"pet_name" validate:"required,max=100"`
	Reason  *string   `json:"reason"`
	At      time.Time `json:"at" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
