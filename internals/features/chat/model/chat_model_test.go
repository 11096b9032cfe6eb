package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRoomOrderIndependent(t *testing.T) {
	a := CanonicalRoom("karim@example.com", "rahim@example.com")
	b := CanonicalRoom("rahim@example.com", "karim@example.com")
	assert.Equal(t, a, b)
	assert.Equal(t, "karim@example.com-rahim@example.com", a)
}
