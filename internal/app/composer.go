package app

import (
	"context"
	"math/rand"
	"strings"

	"birthday_notification_bot/internal/domain/greeting"

	"github.com/sirupsen/logrus"
)

// fallbackTemplates are used when no generator is configured or the
// generator fails. Each contains a {name} placeholder.
var fallbackTemplates = []string{
	"Happy Birthday, {name}! 🎉 Wishing you a fantastic day filled with joy.",
	"Many happy returns, {name}! Hope you have a wonderful birthday.",
	"Happy Birthday {name}! May your day be full of fun and surprises.",
}

// Composer builds the greeting text for one recipient.
type Composer struct {
	generator greeting.Generator // nil when no provider is configured
	logger    *logrus.Logger
	pick      func(n int) int // template index selection, swappable in tests
}

func NewComposer(generator greeting.Generator, logger *logrus.Logger) *Composer {
	return &Composer{
		generator: generator,
		logger:    logger,
		pick:      rand.Intn,
	}
}

// Compose returns the message text for a contact. A per-contact template
// always wins and is returned verbatim after {name} substitution. Otherwise
// the generator is tried best-effort; any failure falls back to a random
// builtin template, with the notes appended as a postscript when present.
func (c *Composer) Compose(ctx context.Context, name, notes, template string) string {
	if strings.TrimSpace(template) != "" {
		return strings.ReplaceAll(template, "{name}", name)
	}

	if c.generator != nil {
		text, err := c.generator.Generate(ctx, name, notes)
		if err == nil {
			return text
		}
		c.logger.Warnf("Greeting generation failed, using builtin template: %v", err)
	} else {
		c.logger.Info("Greeting generator not configured; using builtin template")
	}

	message := strings.ReplaceAll(fallbackTemplates[c.pick(len(fallbackTemplates))], "{name}", name)
	if notes != "" {
		message += " PS: " + notes
	}
	return message
}
