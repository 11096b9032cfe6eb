package dto

import "time"

type CreatePetRequest struct {
	PetName     string  `json:"pet_name" validate:"required,max=100"`
	Species     string  `json:"species" validate:"required,max=60"`
	Breed       *string `json:"breed" validate:"omitempty,max=100"`
	AgeMonths   *int    `json:"age_months" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

type UpdatePetRequest struct {
	PetName     *string `json:"pet_name" validate:"omitempty,max=100"`
	Breed       *string `json:"breed" validate:"omitempty,max=100"`
	AgeMonths   *int    `json:"age_months" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

type CreateLostPetReportRequest struct {
	PetName          string     `json:"pet_name" validate:"required,max=100"`
	Species          string     `json:"species" validate:"required,max=60"`
	Description      *string    `json:"description"`
	ImageURL         *string    `json:"image_url" validate:"omitempty,url"`
	LastSeenLocation string     `json:"last_seen_location" validate:"required"`
	LastSeenAt       *time.Time `json:"last_seen_at"`
	ContactName      string     `json:"contact_name" validate:"required,max=100"`
	ContactEmail     string     `json:"contact_email" validate:"required,email"`
	ContactPhone     *string    `json:"contact_phone" validate:"omitempty,max=30"`
}

type UpdateLostPetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=lost found reunited"`
}
