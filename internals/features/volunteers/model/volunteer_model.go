package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Volunteer is a pet trainer with bookable availability slots. Slots are
// embedded JSONB, matched by their slot_id string (not a UUID) — the
// legacy shape the SPA already speaks.
type Volunteer struct {
	VolunteerID uuid.UUID `gorm:"column:volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volunteer_id"`

	VolunteerName      string          `gorm:"column:volunteer_name;type:varchar(100);not null" json:"volunteer_name"`
	VolunteerEmail     string          `gorm:"column:volunteer_email;type:varchar(120);not null;unique" json:"volunteer_email"`
	VolunteerExpertise *string         `gorm:"column:volunteer_expertise;type:varchar(150)" json:"volunteer_expertise,omitempty"`
	VolunteerBio       *string         `gorm:"column:volunteer_bio;type:text" json:"volunteer_bio,omitempty"`
	VolunteerImageURL  *string         `gorm:"column:volunteer_image_url;type:text" json:"volunteer_image_url,omitempty"`
	VolunteerRate      decimal.Decimal `gorm:"column:volunteer_rate;type:numeric(12,2);not null;default:0" json:"volunteer_rate"`

	VolunteerAvailableDays datatypes.JSON `gorm:"column:volunteer_available_days;type:jsonb" json:"availableDays,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Volunteer) TableName() string { return "volunteers" }

/* ===================== Slots ===================== */

type AvailableDay struct {
	SlotID   string  `json:"slotId"`
	Day      string  `json:"day"`
	Time     string  `json:"time"`
	IsBooked bool    `json:"isBooked"`
	BookedBy *string `json:"bookedBy,omitempty"`
}

func DecodeAvailableDays(raw datatypes.JSON) ([]AvailableDay, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var days []AvailableDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func EncodeAvailableDays(days []AvailableDay) (datatypes.JSON, error) {
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// BookSlot flips the matching free slot to booked. Returns false when the
// slot is missing or already taken, so the caller can abort its
// transaction.
func BookSlot(days []AvailableDay, slotID, bookedBy string) ([]AvailableDay, bool) {
	for i := range days {
		if days[i].SlotID == slotID && !days[i].IsBooked {
			days[i].IsBooked = true
			by := bookedBy
			days[i].BookedBy = &by
			return days, true
		}
	}
	return days, false
}
