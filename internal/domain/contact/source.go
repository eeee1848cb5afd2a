package contact

import "context"

// Source loads the full contact list for one run.
// This decouples the application logic from the concrete file format.
type Source interface {
	Load(ctx context.Context) ([]Contact, error)
}
