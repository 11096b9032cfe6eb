package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pawmart_backend/internals/features/payment/model"
)

/* ===================== Requests ===================== */

// CustomerInfo is shared by all three initiation payloads. The address
// block is optional; the gateway fills defaults for absent fields.
type CustomerInfo struct {
	CusName     string  `json:"cus_name" validate:"required,max=100"`
	CusEmail    string  `json:"cus_email" validate:"required,email"`
	CusPhone    *string `json:"cus_phone" validate:"omitempty,max=30"`
	CusAddress  *string `json:"cus_add1" validate:"omitempty,max=500"`
	CusCity     *string `json:"cus_city" validate:"omitempty,max=60"`
	CusPostcode *string `json:"cus_postcode" validate:"omitempty,max=20"`
	CusCountry  *string `json:"cus_country" validate:"omitempty,max=60"`
}

// InitiateProductPaymentRequest — POST /api/payments/ssl
type InitiateProductPaymentRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	ProductID   string          `json:"product_id" validate:"required,uuid"`
	ProductName string          `json:"product_name" validate:"required,max=150"`
	CustomerInfo
}

// InitiateAdoptPaymentRequest — POST /api/payments/adopt
type InitiateAdoptPaymentRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	PetID       string          `json:"petId" validate:"required,uuid"`
	PetName     string          `json:"petName" validate:"required,max=100"`
	CustomerInfo
}

// InitiateBookingPaymentRequest — POST /api/payments/booking
type InitiateBookingPaymentRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	VolunteerID string          `json:"volunteerId" validate:"required,uuid"`
	SlotID      string          `json:"slotId" validate:"required,max=100"`
	CustomerInfo
}

// IPNRequest — POST /api/payments/ipn. The gateway sends many more
// fields; everything beyond these two is kept verbatim in ipn_details.
type IPNRequest struct {
	TranID string `json:"tran_id" form:"tran_id" validate:"required"`
	Status string `json:"status" form:"status" validate:"required,max=40"`
}

// CreatePaymentIntentRequest — POST /api/payments/create-payment-intent
type CreatePaymentIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"` // smallest currency unit
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

/* ===================== Validation ===================== */

func validateAmount(v decimal.Decimal) error {
	if v.LessThanOrEqual(decimal.Zero) {
		return errors.New("total_amount must be greater than zero")
	}
	return nil
}

func (r *InitiateProductPaymentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	return validateAmount(r.TotalAmount)
}

func (r *InitiateAdoptPaymentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	return validateAmount(r.TotalAmount)
}

func (r *InitiateBookingPaymentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.SlotID) == "" {
		return errors.New("slotId must not be blank")
	}
	return validateAmount(r.TotalAmount)
}

/* ===================== Responses ===================== */

// InitiateResponse matches the shape the SPA expects from initiation.
type InitiateResponse struct {
	Status         string `json:"status"`
	GatewayPageURL string `json:"GatewayPageURL"`
	TranID         string `json:"tran_id"`
}

// PaymentStatusResponse is the status-query document. Contact and address
// fields are only present for the owner or an admin.
type PaymentStatusResponse struct {
	TranID          string          `json:"tran_id"`
	Kind            string          `json:"payment_kind"`
	Status          string          `json:"payment_status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	CusName         string          `json:"cus_name"`
	CusEmail        *string         `json:"cus_email,omitempty"`
	CusPhone        *string         `json:"cus_phone,omitempty"`
	CusAddress      *string         `json:"cus_add1,omitempty"`
	ProductName     *string         `json:"product_name,omitempty"`
	PetName         *string         `json:"petName,omitempty"`
	IPNStatus       *string         `json:"ipn_status,omitempty"`
	StatusHistory   any             `json:"status_history,omitempty"`
	CreatedAt       string          `json:"created_at"`
	CompletedAt     *string         `json:"payment_completed_at,omitempty"`
	FailedAt        *string         `json:"payment_failed_at,omitempty"`
	CancelledAt     *string         `json:"payment_cancelled_at,omitempty"`
	ReconcileNeeded bool            `json:"reconcile_required,omitempty"`
}

// Redact controls the sensitive-field projection of a status response.
func NewPaymentStatusResponse(p *model.Payment, includeContact bool) PaymentStatusResponse {
	resp := PaymentStatusResponse{
		TranID:          p.PaymentTranID,
		Kind:            p.PaymentKind,
		Status:          p.PaymentStatus,
		TotalAmount:     p.PaymentAmount,
		Currency:        p.PaymentCurrency,
		CusName:         p.PaymentCusName,
		ProductName:     p.PaymentProductName,
		PetName:         p.PaymentPetName,
		IPNStatus:       p.PaymentIPNStatus,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		ReconcileNeeded: p.PaymentReconcileRequired,
	}
	if includeContact {
		email := p.PaymentCusEmail
		resp.CusEmail = &email
		resp.CusPhone = p.PaymentCusPhone
		resp.CusAddress = p.PaymentCusAddress
		if len(p.PaymentStatusHistory) > 0 {
			resp.StatusHistory = p.PaymentStatusHistory
		}
	}
	if p.PaymentCompletedAt != nil {
		s := p.PaymentCompletedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CompletedAt = &s
	}
	if p.PaymentFailedAt != nil {
		s := p.PaymentFailedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.FailedAt = &s
	}
	if p.PaymentCancelledAt != nil {
		s := p.PaymentCancelledAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CancelledAt = &s
	}
	return resp
}

/* ===================== Helpers ===================== */

func ParseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}
