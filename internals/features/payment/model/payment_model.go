package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ===================== Constants ===================== */

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Checkout kinds. The kind decides which domain side effect a success
// callback applies and which tran_id prefix initiation issues.
const (
	PaymentKindProduct     = "product"
	PaymentKindAdoptPet    = "adopt_pet"
	PaymentKindSlotBooking = "slot_booking"
)

const (
	TranPrefixProduct     = "PAW-"
	TranPrefixAdoptPet    = "ADOPT-"
	TranPrefixSlotBooking = "BOOK-"
)

/* ===================== Model ===================== */

// Payment is one checkout attempt, from initiation to terminal state.
// tran_id is the sole correlation key shared with the gateway.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentTranID string `gorm:"column:payment_tran_id;type:varchar(100);not null;unique" json:"tran_id"`
	PaymentKind   string `gorm:"column:payment_kind;type:varchar(20);not null" json:"payment_kind"`
	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	PaymentAmount   decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"total_amount"`
	PaymentCurrency string          `gorm:"column:payment_currency;type:varchar(8);not null;default:'BDT'" json:"currency"`

	// Customer fields, copied from the initiation request
	PaymentCusName     string  `gorm:"column:payment_cus_name;type:varchar(100);not null" json:"cus_name"`
	PaymentCusEmail    string  `gorm:"column:payment_cus_email;type:varchar(120);not null" json:"cus_email"`
	PaymentCusPhone    *string `gorm:"column:payment_cus_phone;type:varchar(30)" json:"cus_phone,omitempty"`
	PaymentCusAddress  *string `gorm:"column:payment_cus_address;type:text" json:"cus_add1,omitempty"`
	PaymentCusCity     *string `gorm:"column:payment_cus_city;type:varchar(60)" json:"cus_city,omitempty"`
	PaymentCusPostcode *string `gorm:"column:payment_cus_postcode;type:varchar(20)" json:"cus_postcode,omitempty"`
	PaymentCusCountry  *string `gorm:"column:payment_cus_country;type:varchar(60)" json:"cus_country,omitempty"`

	// Target of the checkout. The persisted link is captured at initiation
	// time so a callback never has to trust gateway-supplied ids.
	PaymentProductID   *uuid.UUID `gorm:"column:payment_product_id;type:uuid" json:"product_id,omitempty"`
	PaymentProductName *string    `gorm:"column:payment_product_name;type:varchar(150)" json:"product_name,omitempty"`
	PaymentPetID       *uuid.UUID `gorm:"column:payment_pet_id;type:uuid" json:"pet_id,omitempty"`
	PaymentPetName     *string    `gorm:"column:payment_pet_name;type:varchar(100)" json:"pet_name,omitempty"`
	PaymentVolunteerID *uuid.UUID `gorm:"column:payment_volunteer_id;type:uuid" json:"volunteer_id,omitempty"`
	PaymentSlotID      *string    `gorm:"column:payment_slot_id;type:varchar(100)" json:"slot_id,omitempty"`

	// Append-only audit trail; never pruned.
	PaymentStatusHistory datatypes.JSON `gorm:"column:payment_status_history;type:jsonb" json:"status_history,omitempty"`

	// Raw session-create response from the gateway, for debugging.
	PaymentGatewaySession datatypes.JSON `gorm:"column:payment_gateway_session;type:jsonb" json:"-"`

	// IPN fields are last-write-wins, independent of the terminal status.
	PaymentIPNStatus  *string        `gorm:"column:payment_ipn_status;type:varchar(40)" json:"ipn_status,omitempty"`
	PaymentIPNDetails datatypes.JSON `gorm:"column:payment_ipn_details;type:jsonb" json:"ipn_details,omitempty"`

	// Set when the success transaction had to roll back its side effect;
	// surfaced on the admin reconcile listing.
	PaymentReconcileRequired bool `gorm:"column:payment_reconcile_required;not null;default:false" json:"reconcile_required"`

	PaymentCompletedAt *time.Time `gorm:"column:payment_completed_at" json:"payment_completed_at,omitempty"`
	PaymentFailedAt    *time.Time `gorm:"column:payment_failed_at" json:"payment_failed_at,omitempty"`
	PaymentCancelledAt *time.Time `gorm:"column:payment_cancelled_at" json:"payment_cancelled_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

/* ===================== Status history ===================== */

type StatusHistoryEntry struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Details   string         `json:"details,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// NewStatusHistory builds the initial one-entry history for a fresh row.
func NewStatusHistory(details string) datatypes.JSON {
	raw, _ := json.Marshal([]StatusHistoryEntry{{
		Status:    PaymentStatusPending,
		Timestamp: time.Now(),
		Details:   details,
	}})
	return raw
}

// MarshalHistoryEntry returns entry as a one-element array, the shape the
// jsonb concatenation operator appends onto the history column.
func MarshalHistoryEntry(entry StatusHistoryEntry) datatypes.JSON {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	raw, _ := json.Marshal([]StatusHistoryEntry{entry})
	return raw
}

// AppendHistoryExpr builds the SET expression appending one history entry
// inside the UPDATE itself. The column is append-only; a read-then-write
// here would let two writers erase each other's entries.
func AppendHistoryExpr(entry StatusHistoryEntry) clause.Expr {
	return gorm.Expr(
		"COALESCE(payment_status_history, '[]'::jsonb) || ?::jsonb",
		[]byte(MarshalHistoryEntry(entry)),
	)
}

// TranPrefixFor maps a payment kind to its tran_id prefix.
func TranPrefixFor(kind string) string {
	switch kind {
	case PaymentKindAdoptPet:
		return TranPrefixAdoptPet
	case PaymentKindSlotBooking:
		return TranPrefixSlotBooking
	default:
		return TranPrefixProduct
	}
}

func (p *Payment) IsTerminal() bool {
	return p.PaymentStatus != PaymentStatusPending
}
