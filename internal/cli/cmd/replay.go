package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/uibridge/internal/application/usecase"
	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/ui/mainloop"
	"github.com/bnema/uibridge/internal/ui/surface"
)

var (
	replayScript    string
	replayNoJournal bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [event...]",
	Short: "Send events through a session without a window",
	Long: `Create a session, send it the given events in order, then close it.

Events are read from the arguments, or one per line from stdin when none are
given (or the only argument is "-"). Blank lines and lines starting with '#'
are skipped.

Examples:
  uibridge replay counter.increment counter.increment save.clicked
  printf 'counter.increment\nsave.clicked\n' | uibridge replay`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayScript, "script", "", "JavaScript file registering extra handlers")
	replayCmd.Flags().BoolVar(&replayNoJournal, "no-journal", false, "do not journal the replayed events")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	events := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		var err error
		events, err = readEventLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	stack, err := newBridgeStack(ctx, app, stackOptions{scriptPath: replayScript, noJournal: replayNoJournal})
	if err != nil {
		return err
	}

	// No UI loop here: actions are applied on the session goroutine, and the
	// surface is only read after the session is closed.
	view := surface.New()
	relay := mainloop.NewRelay(func(fn func()) { fn() }, view.Apply)

	out, err := usecase.NewReplayEventsUseCase(stack.Factory).Execute(ctx, usecase.ReplayEventsInput{
		Window:    surface.WindowClass{Title: app.Config.TUI.Title},
		View:      surface.ViewClass{Name: counterView},
		ViewModel: surface.ViewModelClass{Bindings: surface.BindingsFromMap(app.Config.TUI.Bindings)},
		Events:    events,
		Sink:      relay,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, renderReplay(app.Theme, out, view))
	return nil
}

func readEventLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return lines, nil
}

func renderReplay(theme *styles.Theme, out *usecase.ReplayEventsOutput, view *surface.Surface) string {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Render(styles.IconSession) +
		theme.Title.MarginLeft(1).Render("Session "+string(out.SessionID)) + "  " +
		theme.CountBadge(len(out.Events), "event")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	if len(out.Events) > 0 {
		table := styles.NewStyledTable(theme, styles.EventTableColumns(), styles.EventRows(out.Events), 70, len(out.Events)+1)
		b.WriteString(table.View())
		b.WriteString("\n\n")
	}

	box := theme.StateBox(view.State())
	if box == "" {
		box = theme.Subtle.Render("no state")
	}
	b.WriteString(box)
	return b.String()
}
