package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
)

const flagDateFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var dir string
	var txType string
	var amount string
	var description string
	var category string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse(flagDateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			txn, err := ledger.NewService(dataDir).Add(ledger.AddParams{
				Type:        model.TransactionType(txType),
				Amount:      amt,
				Description: description,
				Category:    category,
				Date:        when,
			})
			if err != nil {
				return err
			}

			recordActivity(dataDir, cfg, "add", fmt.Sprintf("%s %s %s", txn.Type, txn.Amount.StringFixed(2), txn.Description))
			fmt.Printf("Added %s %s%s (%s)\n", txn.Type, cfg.Currency.Symbol, txn.Amount.StringFixed(2), txn.ID)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income or expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required, positive)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "free-text description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")

	return cmd
}
