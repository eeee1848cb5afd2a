package dedup

import "context"

// Repository persists yearly send records keyed by (phone, year).
type Repository interface {
	// Init ensures the backing table exists. Safe to call repeatedly and
	// across processes.
	Init(ctx context.Context) error
	// HasSent reports whether a record exists for the given key.
	HasSent(ctx context.Context, phone string, year int) (bool, error)
	// Record upserts the send record for (phone, year) with the current UTC
	// timestamp and the delivered message text.
	Record(ctx context.Context, phone string, year int, message string) error
}
