package dedup

import "time"

// SendRecord marks that a greeting went out to a phone number in a given
// calendar year. At most one record exists per (phone, year); a repeated
// send for the same key replaces the earlier record.
type SendRecord struct {
	Phone   string
	Year    int
	SentAt  time.Time // UTC
	Message string    // the exact text that was delivered
}
