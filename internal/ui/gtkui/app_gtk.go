//go:build gtk

package gtkui

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
	"github.com/bnema/uibridge/internal/ui/mainloop"
	"github.com/bnema/uibridge/internal/ui/surface"
)

// GTK must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

// Run opens one window bound to a new session and blocks until the GTK
// application exits. Call it from the main goroutine.
func Run(ctx context.Context, factory *bridge.Factory, opts Options) error {
	log := logging.FromContext(ctx).With().Str("component", "gtk").Logger()

	app := gtk.NewApplication(opts.appID(), gio.ApplicationFlagsNone)

	var win *window
	app.ConnectActivate(func() {
		if win != nil {
			win.present()
			return
		}
		win = newWindow(ctx, app, factory, opts, log)
	})
	app.ConnectShutdown(func() {
		if win != nil {
			win.session.Release()
		}
	})

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-stopped:
			return
		case <-ctx.Done():
		}
		postMain(func() {
			if win == nil {
				app.Quit()
				return
			}
			win.session.Release()
		})
	}()

	log.Debug().Str("app_id", opts.appID()).Msg("starting GTK main loop")
	// Only argv[0]: the remaining arguments belong to the CLI, not GTK.
	if code := app.Run(os.Args[:1]); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}
	return nil
}

func postMain(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// window owns the widgets of one session. Every method runs on the GTK
// main loop.
type window struct {
	app     *gtk.Application
	session *bridge.Session
	relay   *mainloop.Relay
	surface *surface.Surface
	log     zerolog.Logger

	win   *gtk.ApplicationWindow
	root  *gtk.Box
	state *gtk.Label
}

func newWindow(ctx context.Context, app *gtk.Application, factory *bridge.Factory, opts Options, log zerolog.Logger) *window {
	w := &window{app: app, surface: surface.New(), log: log}
	w.relay = mainloop.NewRelay(postMain, w.apply)

	view := opts.View
	if view == "" {
		view = "main"
	}
	w.session = factory.CreateSession(ctx,
		surface.WindowClass{Title: opts.Title},
		surface.ViewClass{Name: view},
		surface.ViewModelClass{Bindings: opts.Bindings},
		bridge.WithActionSink(w.relay),
	)
	return w
}

func (w *window) apply(action entity.Action) {
	w.surface.Apply(action)

	switch action.Kind {
	case entity.ActionCreateWindow:
		w.createWindow()
	case entity.ActionCreateView:
		w.createView()
	case entity.ActionSetRootView:
		if w.win != nil && w.root != nil {
			w.win.SetChild(w.root)
		}
	case entity.ActionOpenWindow:
		w.present()
	case entity.ActionSetState:
		w.renderState()
	case entity.ActionCloseWindow:
		w.relay.Destroy()
		if w.win != nil {
			w.win.Destroy()
		}
		w.app.Quit()
	default:
		w.log.Debug().Str("kind", string(action.Kind)).Msg("ignoring action")
	}
}

func (w *window) createWindow() {
	w.win = gtk.NewApplicationWindow(w.app)
	w.win.SetTitle(w.surface.Title())
	w.win.SetDefaultSize(360, 220)

	// The window stays up until the session answers with close_window.
	w.win.ConnectCloseRequest(func() bool {
		w.session.Forwarder().SendEvent(CloseEvent)
		w.session.Release()
		return true
	})
}

func (w *window) createView() {
	w.root = gtk.NewBox(gtk.OrientationVertical, 12)
	w.root.SetMarginTop(16)
	w.root.SetMarginBottom(16)
	w.root.SetMarginStart(16)
	w.root.SetMarginEnd(16)

	w.state = gtk.NewLabel("")
	w.state.SetXAlign(0)
	w.state.SetVExpand(true)
	w.root.Append(w.state)

	buttons := gtk.NewBox(gtk.OrientationHorizontal, 6)
	forwarder := w.session.Forwarder()
	for _, b := range w.surface.Bindings() {
		event := b.Event
		btn := gtk.NewButtonWithLabel(event)
		btn.SetTooltipText("key: " + b.Key)
		btn.ConnectClicked(func() {
			forwarder.SendEvent(event)
		})
		buttons.Append(btn)
	}
	w.root.Append(buttons)
	w.renderState()
}

func (w *window) present() {
	if w.win != nil {
		w.win.Present()
	}
}

func (w *window) renderState() {
	if w.state == nil {
		return
	}
	entries := w.surface.State()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Key+": "+e.Value)
	}
	if len(lines) == 0 {
		lines = append(lines, "(no state yet)")
	}
	w.state.SetText(strings.Join(lines, "\n"))
}
