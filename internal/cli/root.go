// Package cli wires the command-line surface: the root command runs the
// interactive browser, subcommands manage the demo database.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"listkit/internal/logging"
	"listkit/internal/store"
	"listkit/internal/tui"
)

// App carries the persistent flag values into the commands.
type App struct {
	DBPath  string
	LogPath string
	Verbose bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "listkit",
		Short:        "Virtualized list browser TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive browser
  listkit

  # Populate the demo database first
  listkit seed --rows 500

  # Dump the dataset for scripting
  listkit rows --format edn --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr("LISTKIT_DB", defaultDBPath()), "Path to the SQLite database")
	cmd.PersistentFlags().StringVar(&app.LogPath, "debug-log", envOr("LISTKIT_DEBUG_LOG", ""), "Write debug logs to this file (empty: logging off)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newRowsCmd(app))
	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	logger, closer, err := app.openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.Open(cmd.Context(), app.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	// First run: give the browser something to show.
	if n, err := st.CountRows(cmd.Context()); err == nil && n == 0 {
		if err := st.Seed(cmd.Context(), 200); err != nil {
			return fmt.Errorf("seed initial rows: %w", err)
		}
	}

	return tui.Run(cmd.Context(), st, logging.Component(logger, "tui"))
}

func (app *App) openLogger() (zerolog.Logger, io.Closer, error) {
	level := "info"
	if app.Verbose {
		level = "debug"
	}
	return logging.Setup(logging.Options{
		FilePath: app.LogPath,
		Level:    level,
	})
}

func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "listkit", "listkit.sqlite")
	}
	return "listkit.sqlite"
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
