//go:build !gtk

package gtkui

import (
	"context"

	"github.com/bnema/uibridge/internal/bridge"
)

// Run reports ErrUnavailable.
func Run(_ context.Context, _ *bridge.Factory, _ Options) error {
	return ErrUnavailable
}
