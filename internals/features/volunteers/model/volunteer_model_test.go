package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDays() []AvailableDay {
	return []AvailableDay{
		{SlotID: "slot-1", Day: "Monday", Time: "10:00"},
		{SlotID: "slot-2", Day: "Tuesday", Time: "14:00"},
	}
}

func TestBookSlot(t *testing.T) {
	days, ok := BookSlot(sampleDays(), "slot-2", "karim@example.com")
	require.True(t, ok)
	assert.False(t, days[0].IsBooked)
	assert.True(t, days[1].IsBooked)
	require.NotNil(t, days[1].BookedBy)
	assert.Equal(t, "karim@example.com", *days[1].BookedBy)
}

func TestBookSlotAlreadyTaken(t *testing.T) {
	days, ok := BookSlot(sampleDays(), "slot-1", "karim@example.com")
	require.True(t, ok)

	_, ok = BookSlot(days, "slot-1", "rahim@example.com")
	assert.False(t, ok)
	// the first booking is untouched
	assert.Equal(t, "karim@example.com", *days[0].BookedBy)
}

func TestBookSlotUnknown(t *testing.T) {
	_, ok := BookSlot(sampleDays(), "slot-9", "karim@example.com")
	assert.False(t, ok)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw, err := EncodeAvailableDays(sampleDays())
	require.NoError(t, err)

	days, err := DecodeAvailableDays(raw)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "slot-1", days[0].SlotID)
}

func TestDecodeEmpty(t *testing.T) {
	days, err := DecodeAvailableDays(nil)
	require.NoError(t, err)
	assert.Nil(t, days)
}
