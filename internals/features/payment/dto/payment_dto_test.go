package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart_backend/internals/features/payment/model"
)

func validProductRequest() InitiateProductPaymentRequest {
	return InitiateProductPaymentRequest{
		TotalAmount: decimal.NewFromInt(500),
		ProductID:   "7b0c8a52-22ad-4fb2-9a28-9ce4a2311a11",
		ProductName: "Cat Tree",
		CustomerInfo: CustomerInfo{
			CusName:  "Karim",
			CusEmail: "karim@example.com",
		},
	}
}

func TestProductRequestValid(t *testing.T) {
	r := validProductRequest()
	require.NoError(t, r.Validate(nil))
}

func TestProductRequestZeroAmount(t *testing.T) {
	r := validProductRequest()
	r.TotalAmount = decimal.Zero
	assert.Error(t, r.Validate(nil))
}

func TestProductRequestNegativeAmount(t *testing.T) {
	r := validProductRequest()
	r.TotalAmount = decimal.NewFromInt(-10)
	assert.Error(t, r.Validate(nil))
}

func TestProductRequestBadEmail(t *testing.T) {
	r := validProductRequest()
	r.CusEmail = "not-an-email"
	assert.Error(t, r.Validate(nil))
}

func TestProductRequestBadProductID(t *testing.T) {
	r := validProductRequest()
	r.ProductID = "12345"
	assert.Error(t, r.Validate(nil))
}

func TestAdoptRequestValid(t *testing.T) {
	r := InitiateAdoptPaymentRequest{
		TotalAmount: decimal.NewFromInt(1200),
		PetID:       "7b0c8a52-22ad-4fb2-9a28-9ce4a2311a11",
		PetName:     "Mishti",
		CustomerInfo: CustomerInfo{
			CusName:  "Karim",
			CusEmail: "karim@example.com",
		},
	}
	require.NoError(t, r.Validate(nil))
}

func TestBookingRequestBlankSlot(t *testing.T) {
	r := InitiateBookingPaymentRequest{
		TotalAmount: decimal.NewFromInt(300),
		VolunteerID: "7b0c8a52-22ad-4fb2-9a28-9ce4a2311a11",
		SlotID:      "   ",
		CustomerInfo: CustomerInfo{
			CusName:  "Karim",
			CusEmail: "karim@example.com",
		},
	}
	assert.Error(t, r.Validate(nil))
}

func TestStatusResponseRedaction(t *testing.T) {
	phone := "01711111111"
	p := &model.Payment{
		PaymentTranID:        "PAW-1700000000000-ab12",
		PaymentKind:          model.PaymentKindProduct,
		PaymentStatus:        model.PaymentStatusCompleted,
		PaymentAmount:        decimal.NewFromInt(500),
		PaymentCurrency:      "BDT",
		PaymentCusName:       "Karim",
		PaymentCusEmail:      "karim@example.com",
		PaymentCusPhone:      &phone,
		PaymentStatusHistory: model.NewStatusHistory("initiated"),
	}

	public := NewPaymentStatusResponse(p, false)
	assert.Nil(t, public.CusEmail)
	assert.Nil(t, public.CusPhone)
	assert.Nil(t, public.StatusHistory)
	assert.Equal(t, "Karim", public.CusName)

	owner := NewPaymentStatusResponse(p, true)
	require.NotNil(t, owner.CusEmail)
	assert.Equal(t, "karim@example.com", *owner.CusEmail)
	assert.Equal(t, &phone, owner.CusPhone)
	assert.NotNil(t, owner.StatusHistory)
}

func TestIPNRequestValidation(t *testing.T) {
	v := validator.New()

	ok := IPNRequest{TranID: "PAW-1700000000000-ab12", Status: "VALID"}
	assert.NoError(t, v.Struct(&ok))

	assert.Error(t, v.Struct(&IPNRequest{Status: "VALID"}))
	assert.Error(t, v.Struct(&IPNRequest{TranID: "PAW-1700000000000-ab12"}))
}

func TestParseUUID(t *testing.T) {
	_, err := ParseUUID("7b0c8a52-22ad-4fb2-9a28-9ce4a2311a11")
	require.NoError(t, err)

	_, err = ParseUUID("nope")
	assert.Error(t, err)
}
