package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file, its JSON schema, and edit window key bindings.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Manager.ConfigFile())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file path and key bindings",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

var configBindCmd = &cobra.Command{
	Use:   "bind <key> <event>",
	Short: "Bind a key of the terminal window to an event",
	Example: `  uibridge config bind ctrl+s save.clicked
  uibridge config bind x counter.reset`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateBindings(cmd, func(b map[string]string) error {
			b[strings.ToLower(args[0])] = args[1]
			return nil
		})
	},
}

var configUnbindCmd = &cobra.Command{
	Use:   "unbind <key>",
	Short: "Remove a key binding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateBindings(cmd, func(b map[string]string) error {
			key := strings.ToLower(args[0])
			if _, ok := b[key]; !ok {
				return fmt.Errorf("key %q is not bound", args[0])
			}
			delete(b, key)
			if len(b) == 0 {
				return fmt.Errorf("cannot remove the last binding")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configBindCmd, configUnbindCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	cfg := app.Config
	w := cmd.OutOrStdout()
	fmt.Fprint(w, renderer.RenderConfigInfo(app.Manager.ConfigFile()))
	fmt.Fprint(w, renderer.RenderBindings(slices.Sorted(maps.Keys(cfg.TUI.Bindings)), cfg.TUI.Bindings))
	return nil
}

func updateBindings(cmd *cobra.Command, edit func(map[string]string) error) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	cfg := app.Manager.Get()
	if err := edit(cfg.TUI.Bindings); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	if err := app.Manager.Save(cfg); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprint(w, renderer.RenderSaved("key bindings", app.Manager.ConfigFile()))
	fmt.Fprint(w, renderer.RenderBindings(slices.Sorted(maps.Keys(cfg.TUI.Bindings)), cfg.TUI.Bindings))
	return nil
}
