package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingRef generates a booking reference of the form "BK" followed
// by eight uppercase hex characters. Global uniqueness is enforced by
// the database constraint; callers retry on a collision.
func NewBookingRef() string {
	return "BK" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
