package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// maxCodeAttempts bounds regeneration when a generated code collides with an
// existing shipment (the store's unique index is the arbiter).
const maxCodeAttempts = 5

// newTrackingCode returns a shipment identifier in the format CC-XXXXXXXXXXXX
// (12 uppercase hex characters, 48 bits of entropy). Codes carry no creation
// order, so knowing one shipment's code does not allow enumerating others,
// and they stay short enough to read out over the phone.
func newTrackingCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("CC-%012X", time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("CC-%012X", b)
}
