package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func newListCommand() *cobra.Command {
	var dir string
	var txType string
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
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

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tMATCHED")
			for _, t := range txns {
				if txType != "" && t.Type != model.TransactionType(txType) {
					continue
				}
				if category != "" && t.Category != category {
					continue
				}
				matched := ""
				if t.IsMatched {
					matched = t.BankReference
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\t%s\t%s\t%s\n",
					t.ID, t.Date.Format(flagDateFormat), t.Type,
					cfg.Currency.Symbol, t.Amount.StringFixed(2),
					t.Category, t.Description, matched)
			}
			return w.Flush()
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income or expense)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	return cmd
}
