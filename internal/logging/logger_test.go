package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_VerboseControlsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	buf.Reset()
	l = New(&buf, true)
	l.Debug().Msg("visible debug")
	assert.Contains(t, buf.String(), "visible debug")
}

func TestComponent_TagsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, false), "upload")
	l.Info().Msg("submitted")

	assert.Contains(t, buf.String(), "component=upload")
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	// Must not panic and has no output to inspect.
	l.Info().Str("k", "v").Msg("discarded")
}
