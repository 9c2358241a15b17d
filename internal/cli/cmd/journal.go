package cmd

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/uibridge/internal/application/usecase"
	"github.com/bnema/uibridge/internal/cli"
	"github.com/bnema/uibridge/internal/cli/model"
	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/domain/entity"
)

var (
	journalLimit     int
	journalPruneDays int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse the event journal",
	Long: `Browse the sessions recorded in the event journal and the events they received.

Without a subcommand an interactive browser opens. The journal is written
while journal.enabled is set in the config file.`,
	RunE: runJournal,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled sessions, most recent first",
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the events of a session",
	Long: `Show the journaled events of a session in arrival order.

The id may be the full session id, a prefix of it, or its last four characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runJournalShow,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

var journalPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete events older than the retention window",
	RunE:  runJournalPrune,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd, journalShowCmd, journalDeleteCmd, journalPruneCmd)

	journalCmd.PersistentFlags().IntVarP(&journalLimit, "limit", "n", 100, "maximum number of rows")
	journalPruneCmd.Flags().IntVar(&journalPruneDays, "days", -1, "retention in days (default journal.retention_days)")
}

func journalApp() (*cli.App, *usecase.InspectJournalUseCase, error) {
	app := GetApp()
	if app == nil {
		return nil, nil, fmt.Errorf("app not initialized")
	}
	if err := app.EnsureJournalDir(); err != nil {
		return nil, nil, err
	}
	return app, usecase.NewInspectJournalUseCase(app.Journal()), nil
}

func runJournal(_ *cobra.Command, _ []string) error {
	app, inspect, err := journalApp()
	if err != nil {
		return err
	}

	m := model.NewJournalModel(app.Ctx(), app.Theme, model.JournalModelConfig{
		Inspect:   inspect,
		MaxListed: journalLimit,
		MaxEvents: journalLimit,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runJournalList(cmd *cobra.Command, _ []string) error {
	app, inspect, err := journalApp()
	if err != nil {
		return err
	}

	ids, err := inspect.ListSessions(app.Ctx(), journalLimit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	t := app.Theme
	if len(ids) == 0 {
		fmt.Fprintln(w, t.Subtle.Render("No journaled sessions."))
		return nil
	}
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconSession)
	for _, id := range ids {
		fmt.Fprintf(w, "%s %s %s\n", icon, t.Normal.Render(string(id)), t.MutedBadge(id.Short()))
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	app, inspect, err := journalApp()
	if err != nil {
		return err
	}

	id, records, err := inspect.Events(app.Ctx(), args[0], journalLimit)
	if err != nil {
		return err
	}

	t := app.Theme
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n\n", t.Title.Render(string(id)), t.CountBadge(len(records), "event"))
	table := styles.NewStyledTable(t, styles.JournalTableColumns(), styles.JournalRows(records), 70, len(records)+1)
	fmt.Fprintln(w, table.View())
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	app, inspect, err := journalApp()
	if err != nil {
		return err
	}

	id := entity.SessionID(args[0])
	deleted, err := inspect.Delete(app.Ctx(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %s (%s events)\n",
		lipgloss.NewStyle().Foreground(app.Theme.Success).Render(styles.IconTrash),
		id, strconv.FormatInt(deleted, 10))
	return nil
}

func runJournalPrune(cmd *cobra.Command, _ []string) error {
	app, _, err := journalApp()
	if err != nil {
		return err
	}

	days := journalPruneDays
	if days < 0 {
		days = app.Config.Journal.RetentionDays
	}
	out, err := usecase.NewPruneJournalUseCase(app.Journal()).Execute(app.Ctx(), usecase.PruneJournalInput{RetentionDays: days})
	if err != nil {
		return err
	}

	if days == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("retention is 0 days; nothing pruned"))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s pruned %d events received before %s\n",
		lipgloss.NewStyle().Foreground(app.Theme.Success).Render(styles.IconCheck),
		out.Deleted, out.Cutoff.Local().Format("2006-01-02 15:04"))
	return nil
}
