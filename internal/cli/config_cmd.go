package cli

import (
	"fmt"

	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Config.YAML()
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			if app.Config.File != "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("# "+app.Config.File))
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	})

	return cmd
}
