package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func newUpdateCommand() *cobra.Command {
	var dir string
	var txType string
	var amount string
	var description string
	var category string
	var date string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a recorded transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			var params ledger.UpdateParams
			if cmd.Flags().Changed("type") {
				t := model.TransactionType(txType)
				params.Type = &t
			}
			if cmd.Flags().Changed("amount") {
				amt, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amount, err)
				}
				params.Amount = &amt
			}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if cmd.Flags().Changed("category") {
				params.Category = &category
			}
			if cmd.Flags().Changed("date") {
				when, err := time.Parse(flagDateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
				params.Date = &when
			}

			txn, err := ledger.NewService(dataDir).Update(args[0], params)
			if err != nil {
				return err
			}

			recordActivity(dataDir, cfg, "update", txn.ID)
			fmt.Printf("Updated %s\n", txn.ID)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&txType, "type", "", "transaction type (income or expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (positive)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")

	return cmd
}
