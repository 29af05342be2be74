package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", &buf)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	cl := Component(l, "resolver")
	cl.Info().Str("from", "v1.0.0").Msg("resolved")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, "cmp=resolver")
	assert.Contains(t, out, "from=v1.0.0")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", nil)
	assert.Error(t, err)
}
