// Package gtkui shows a session's window as a GTK4 application window.
// The real adapter needs the gtk build tag; without it Run reports
// ErrUnavailable.
package gtkui

import (
	"errors"

	"github.com/bnema/uibridge/internal/ui/surface"
)

// ErrUnavailable is returned by Run in builds without GTK support.
var ErrUnavailable = errors.New("gtk support not compiled in (rebuild with -tags gtk)")

// CloseEvent is sent to the session when the user closes the window.
const CloseEvent = "window.close"

const defaultAppID = "io.github.bnema.uibridge"

// Options describe the window to open.
type Options struct {
	AppID    string
	Title    string
	View     string
	Bindings []surface.Binding
}

func (o Options) appID() string {
	if o.AppID == "" {
		return defaultAppID
	}
	return o.AppID
}
