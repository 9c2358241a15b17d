package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/cli"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/infrastructure/config"
	"github.com/bnema/uibridge/internal/infrastructure/metrics"
	"github.com/bnema/uibridge/internal/logging"
	"github.com/bnema/uibridge/internal/ui/gtkui"
	"github.com/bnema/uibridge/internal/ui/surface"
	"github.com/bnema/uibridge/internal/ui/tui"
)

const counterView = "counter"

var (
	runScript string
	runGTK    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window bound to a new session",
	Long: `Open a counter window bound to a new session.

By default the window is drawn in the terminal; its key bindings come from
[tui.bindings] in the config file. With --gtk a GTK4 window is opened instead
(requires a build with -tags gtk).

While the terminal window is open, logs go to the rotating log file in
logging.log_dir. The metrics endpoint is served when metrics.enabled is set.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runScript, "script", "", "JavaScript file registering extra handlers")
	runCmd.Flags().BoolVar(&runGTK, "gtk", false, "open a GTK window instead of the terminal one")
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	if !runGTK {
		logPath, err := app.UseFileLog()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, app.Theme.Subtle.Render("logging to "+logPath))
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	defer logging.LogPanic(log)

	stack, err := newBridgeStack(ctx, app, stackOptions{scriptPath: runScript, metrics: true})
	if err != nil {
		return err
	}

	app.Manager.OnConfigChange(func(c *config.Config) {
		// Logging is applied live by the app; everything else is read at startup.
		pending := slices.DeleteFunc(config.ChangedSections(cfg, c), func(s string) bool { return s == "logging" })
		if len(pending) > 0 {
			log.Info().Strs("sections", pending).Msg("config changed; these sections apply to the next run")
		}
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	serveCtx, cancelServe := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(serveCtx)
	if stack.Recorder != nil {
		srv, err := metrics.Listen(cfg.Metrics.Addr, stack.Recorder)
		if err != nil {
			cancelServe()
			return fmt.Errorf("metrics endpoint: %w", err)
		}
		g.Go(func() error { return srv.Serve(gctx) })
	}

	var info *entity.SessionInfo
	if runGTK {
		err = gtkui.Run(gctx, stack.Factory, gtkui.Options{
			Title:    cfg.TUI.Title,
			View:     counterView,
			Bindings: surface.BindingsFromMap(cfg.TUI.Bindings),
		})
	} else {
		info, err = runTerminalWindow(gctx, app, stack.Factory)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.WithoutCancel(ctx), cfg.Bridge.DrainTimeout)
	defer cancelDrain()
	if shutdownErr := stack.Factory.Shutdown(drainCtx); shutdownErr != nil {
		log.Warn().Err(shutdownErr).Msg("sessions did not drain in time")
		err = errors.Join(err, shutdownErr)
	}

	cancelServe()
	if waitErr := g.Wait(); waitErr != nil {
		err = errors.Join(err, waitErr)
	}

	if info != nil {
		fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("session %s closed after %d events", info.ID, info.Delivered)))
	}
	return err
}

// runTerminalWindow opens the Bubble Tea window for one session and blocks
// until the user quits it.
func runTerminalWindow(ctx context.Context, app *cli.App, factory *bridge.Factory) (*entity.SessionInfo, error) {
	cfg := app.Config

	win := tui.NewWindow()
	program := tea.NewProgram(tui.NewModel(win, app.Theme), tea.WithAltScreen(), tea.WithContext(ctx))
	relay := win.Relay(program.Send)

	session := factory.CreateSession(ctx,
		surface.WindowClass{Title: cfg.TUI.Title},
		surface.ViewClass{Name: counterView},
		surface.ViewModelClass{Bindings: surface.BindingsFromMap(cfg.TUI.Bindings)},
		bridge.WithActionSink(relay),
	)
	win.Bind(session.Forwarder())

	_, err := program.Run()
	relay.Destroy()
	session.Release()
	logging.FromContext(ctx).Debug().
		Str("session_id", string(session.ID())).
		Uint64("coalesced_updates", relay.Coalesced()).
		Msg("terminal window closed")

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Bridge.DrainTimeout)
	defer cancel()
	if waitErr := session.Wait(drainCtx); waitErr != nil {
		return nil, errors.Join(err, fmt.Errorf("session %s: %w", session.ID(), waitErr))
	}
	info := session.Info()
	return &info, err
}
