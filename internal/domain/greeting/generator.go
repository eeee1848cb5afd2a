package greeting

import "context"

// Generator produces a personalized greeting for a recipient.
// Implementations are best-effort: the caller treats any error as "no text
// produced" and falls back to builtin templates.
type Generator interface {
	Generate(ctx context.Context, name, notes string) (string, error)
}
