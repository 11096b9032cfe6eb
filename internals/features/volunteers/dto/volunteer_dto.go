package dto

import (
	"github.com/shopspring/decimal"
)

type CreateVolunteerRequest struct {
	VolunteerName string           `json:"volunteer_name" validate:"required,max=100"`
	Email         string           `json:"email" validate:"required,email"`
	Expertise     *string          `json:"expertise" validate:"omitempty,max=150"`
	Bio           *string          `json:"bio"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,url"`
	Rate          *decimal.Decimal `json:"rate"`
}

type UpdateVolunteerRequest struct {
	VolunteerName *string          `json:"volunteer_name" validate:"omitempty,max=100"`
	Expertise     *string          `json:"expertise" validate:"omitempty,max=150"`
	Bio           *string          `json:"bio"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,url"`
	Rate          *decimal.Decimal `json:"rate"`
}

// AddSlotRequest appends one available day. The slot id is generated
// server-side so the SPA never invents correlation keys.
type AddSlotRequest struct {
	Day  string `json:"day" validate:"required,max=20"`
	Time string `json:"time" validate:"required,max=30"`
}
