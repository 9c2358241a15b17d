package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	require.PanicsWithValue(t, "boom", func() {
		defer LogPanic(&logger)
		panic("boom")
	})

	out := buf.String()
	assert.Contains(t, out, `"panic":"boom"`)
	assert.Contains(t, out, `"message":"crash"`)
	assert.Contains(t, out, `"go_version"`)
	assert.Contains(t, out, `"level":"fatal"`)
}

func TestLogPanic_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	require.NotPanics(t, func() {
		defer LogPanic(&logger)
	})
	assert.Empty(t, buf.String())
}
