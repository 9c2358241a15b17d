package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/domain/build"
)

func TestConfigRenderer_RenderBindings(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderBindings([]string{"+", "s"}, map[string]string{"+": "counter.increment", "s": "save.clicked"})
	require.Contains(t, out, "Key bindings (2)")
	assert.Contains(t, out, "counter.increment")
	assert.Contains(t, out, "save.clicked")
	assert.Less(t, indexOf(out, "counter.increment"), indexOf(out, "save.clicked"))
}

func TestConfigRenderer_RenderBindingsEmpty(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderBindings(nil, nil), "no key bindings")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
