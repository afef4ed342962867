package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"listkit/internal/format"
	"listkit/internal/store"
)

// rowOut is the wire shape of one dataset row for the rows command.
type rowOut struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

func newRowsCmd(app *App) *cobra.Command {
	var (
		outFormat string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:          "rows",
		Short:        "Print the dataset the browser displays",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), app.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			rows, err := st.Rows(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]rowOut, 0, len(rows))
			for _, r := range rows {
				out = append(out, rowOut{
					ID:       r.ID,
					Name:     r.Name,
					Kind:     r.Kind,
					Size:     r.Size,
					Modified: r.Modified.Format(time.RFC3339),
				})
			}
			if err := format.Write(cmd.OutOrStdout(), out, outFormat, pretty); err != nil {
				return fmt.Errorf("write rows: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", format.JSON, "Output format: json or edn")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	return cmd
}
