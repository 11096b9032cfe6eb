package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pawmart_backend/internals/features/payment/model"
)

func TestNewTranIDPrefixes(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewTranID(model.PaymentKindProduct), "PAW-"))
	assert.True(t, strings.HasPrefix(NewTranID(model.PaymentKindAdoptPet), "ADOPT-"))
	assert.True(t, strings.HasPrefix(NewTranID(model.PaymentKindSlotBooking), "BOOK-"))
	// unknown kinds fall back to the product prefix
	assert.True(t, strings.HasPrefix(NewTranID("whatever"), "PAW-"))
}

func TestNewTranIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewTranID(model.PaymentKindProduct)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate tran_id %s", id)
		seen[id] = struct{}{}
	}
}
