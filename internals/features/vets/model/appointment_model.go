package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"appointment_id"`

	AppointmentVetID      uuid.UUID `gorm:"column:appointment_vet_id;type:uuid;not null;index" json:"appointment_vet_id"`
	AppointmentVetName    string    `gorm:"column:appointment_vet_name;type:varchar(120);not null" json:"appointment_vet_name"`
	AppointmentOwnerEmail string    `gorm:"column:appointment_owner_email;type:varchar(120);not null;index" json:"appointment_owner_email"`
	AppointmentOwnerName  string    `gorm:"column:appointment_owner_name;type:varchar(120);not null" json:"appointment_owner_name"`
	AppointmentPetName    string    `gorm:"column:appointment_pet_name;type:varchar(100);not null" json:"appointment_pet_name"`
	AppointmentReason     *string   `gorm:"column:appointment_reason;type:text" json:"appointment_reason,omitempty"`

	AppointmentAt     time.Time `gorm:"column:appointment_at;not null;index" json:"appointment_at"`
	AppointmentStatus string    `gorm:"column:appointment_status;type:varchar(20);not null;default:pending" json:"appointment_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Appointment) TableName() string { return "appointments" }
