package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, name, notes string) (string, error) {
	g.calls++
	return g.text, g.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestComposeTemplateWinsOverGenerator(t *testing.T) {
	gen := &stubGenerator{text: "generated text"}
	c := NewComposer(gen, quietLogger())

	got := c.Compose(context.Background(), "Alice", "loves cats", "Yo {name}!")

	assert.Equal(t, "Yo Alice!", got)
	assert.Zero(t, gen.calls, "generator must not be called when a template is set")
}

func TestComposeTemplateSubstitutesEveryPlaceholder(t *testing.T) {
	c := NewComposer(nil, quietLogger())

	got := c.Compose(context.Background(), "Bob", "", "Hey {name}, happy birthday {name}!")

	assert.Equal(t, "Hey Bob, happy birthday Bob!", got)
}

func TestComposeUsesGeneratorWhenNoTemplate(t *testing.T) {
	gen := &stubGenerator{text: "Happy bday Alice! 🎂"}
	c := NewComposer(gen, quietLogger())

	got := c.Compose(context.Background(), "Alice", "", "")

	assert.Equal(t, "Happy bday Alice! 🎂", got)
	assert.Equal(t, 1, gen.calls)
}

func TestComposeFallsBackWhenGeneratorFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	c := NewComposer(gen, quietLogger())
	c.pick = func(int) int { return 0 }

	got := c.Compose(context.Background(), "Alice", "", "")

	assert.Equal(t, "Happy Birthday, Alice! 🎉 Wishing you a fantastic day filled with joy.", got)
}

func TestComposeFallbackWithoutGenerator(t *testing.T) {
	c := NewComposer(nil, quietLogger())
	c.pick = func(int) int { return 1 }

	got := c.Compose(context.Background(), "Bob", "", "")

	assert.Equal(t, "Many happy returns, Bob! Hope you have a wonderful birthday.", got)
}

func TestComposeFallbackAppendsNotesPostscript(t *testing.T) {
	c := NewComposer(nil, quietLogger())
	c.pick = func(int) int { return 2 }

	got := c.Compose(context.Background(), "Bob", "say hi to the dog", "")

	assert.Equal(t, "Happy Birthday Bob! May your day be full of fun and surprises. PS: say hi to the dog", got)
}

func TestComposeFallbackStaysInTemplateSet(t *testing.T) {
	c := NewComposer(nil, quietLogger())

	for i := 0; i < 20; i++ {
		got := c.Compose(context.Background(), "Bob", "", "")
		assert.Contains(t, got, "Bob")

		matched := false
		for _, tmpl := range fallbackTemplates {
			if got == strings.ReplaceAll(tmpl, "{name}", "Bob") {
				matched = true
				break
			}
		}
		assert.True(t, matched, "message %q not drawn from the builtin set", got)
	}
}
