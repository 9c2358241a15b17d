package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangedSections(t *testing.T) {
	prev := DefaultConfig()

	assert.Empty(t, ChangedSections(prev, DefaultConfig()))
	assert.Len(t, ChangedSections(nil, prev), 6)
	assert.Nil(t, ChangedSections(prev, nil))

	next := DefaultConfig()
	next.Logging.Level = "debug"
	next.TUI.Bindings["x"] = "counter.reset"
	assert.Equal(t, []string{"logging", "tui"}, ChangedSections(prev, next))

	next = DefaultConfig()
	next.Metrics.Enabled = true
	next.Script.Path = "/tmp/handlers.js"
	assert.Equal(t, []string{"metrics", "script"}, ChangedSections(prev, next))
}
