package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"listkit/internal/store"
)

func newSeedCmd(app *App) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the demo database with deterministic rows",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 {
				return fmt.Errorf("--rows must be positive, got %d", rows)
			}
			st, err := store.Open(cmd.Context(), app.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Seed(cmd.Context(), rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows into %s\n", rows, app.DBPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 200, "Number of rows to generate")
	return cmd
}
