package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/alexanderramin/casetracker/internal/ingest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newIngestCmd(app *App) *cobra.Command {
	var (
		productPath  string
		masterPath   string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Append a finished product record to the master case file",
		Long: "Copies the master fields of the product record into the master JSON\n" +
			"array, creating it when missing, and assigns an id when the product has\n" +
			"none. With --template the product file is reset from the template.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if masterPath == "" {
				masterPath = strings.TrimPrefix(app.Config.Source, "file://")
			}
			if strings.Contains(masterPath, "://") {
				return fmt.Errorf("--master is required when the source is %s", masterPath)
			}

			id, err := ingest.Merge(productPath, masterPath)
			if err != nil {
				return fmt.Errorf("ingesting %s: %w", productPath, err)
			}
			app.Logger.Info("case ingested",
				zap.String("id", id),
				zap.String("product", productPath),
				zap.String("master", masterPath),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Ingested case %s into %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(id), masterPath)

			if templatePath == "" {
				return nil
			}
			if err := ingest.ResetProduct(productPath, templatePath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reset %s from %s\n",
				formatter.StyleGreen.Render("✔"), productPath, templatePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&productPath, "product", "product.json", "product record to ingest")
	cmd.Flags().StringVar(&masterPath, "master", "", "master case file (default: the configured source)")
	cmd.Flags().StringVar(&templatePath, "template", "", "template to reset the product from after ingesting")
	return cmd
}
