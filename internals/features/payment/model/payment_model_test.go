package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusHistory(t *testing.T) {
	raw := NewStatusHistory("initiated")

	var entries []StatusHistoryEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, PaymentStatusPending, entries[0].Status)
	assert.Equal(t, "initiated", entries[0].Details)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestMarshalHistoryEntry(t *testing.T) {
	raw := MarshalHistoryEntry(StatusHistoryEntry{Status: PaymentStatusCompleted, Details: "callback"})

	// one-element array, ready for jsonb concatenation
	var entries []StatusHistoryEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, PaymentStatusCompleted, entries[0].Status)
	assert.Equal(t, "callback", entries[0].Details)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAppendHistoryExprConcatenatesInSQL(t *testing.T) {
	expr := AppendHistoryExpr(StatusHistoryEntry{Status: "ipn", Details: "VALID"})

	assert.Equal(t, "COALESCE(payment_status_history, '[]'::jsonb) || ?::jsonb", expr.SQL)
	require.Len(t, expr.Vars, 1)

	var entries []StatusHistoryEntry
	require.NoError(t, json.Unmarshal(expr.Vars[0].([]byte), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ipn", entries[0].Status)
}

func TestTranPrefixFor(t *testing.T) {
	assert.Equal(t, TranPrefixProduct, TranPrefixFor(PaymentKindProduct))
	assert.Equal(t, TranPrefixAdoptPet, TranPrefixFor(PaymentKindAdoptPet))
	assert.Equal(t, TranPrefixSlotBooking, TranPrefixFor(PaymentKindSlotBooking))
	assert.Equal(t, TranPrefixProduct, TranPrefixFor("unknown"))
}

func TestIsTerminal(t *testing.T) {
	p := &Payment{PaymentStatus: PaymentStatusPending}
	assert.False(t, p.IsTerminal())

	for _, s := range []string{PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled} {
		p.PaymentStatus = s
		assert.True(t, p.IsTerminal())
	}
}
