package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/report"
)

func newExportCommand() *cobra.Command {
	var dir string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded transactions as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			txns, err := ledger.NewService(dataDir).List()
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := report.ExportCSV(out, txns, cfg.Currency.Symbol); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("Exported %d transactions to %s\n", len(txns), output)
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&output, "output", "", "write the CSV to a file instead of stdout")

	return cmd
}
