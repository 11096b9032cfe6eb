package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"pawmart_backend/internals/features/payment/model"
)

// NewTranID builds the gateway correlation id: kind prefix + millisecond
// timestamp + 4 random hex chars. The suffix keeps ids unique when two
// initiations land in the same millisecond.
func NewTranID(kind string) string {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		// fall back to the nanosecond tail; still unique enough per process
		return fmt.Sprintf("%s%d", model.TranPrefixFor(kind), time.Now().UnixNano())
	}
	return fmt.Sprintf("%s%d-%s", model.TranPrefixFor(kind), time.Now().UnixMilli(), hex.EncodeToString(buf))
}
