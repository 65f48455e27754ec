package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/analytics"
	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func parseFilter(period string) (model.TimeFilter, error) {
	switch f := model.TimeFilter(period); f {
	case model.FilterDaily, model.FilterWeekly, model.FilterMonthly, model.FilterYearly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown period %q (daily, weekly, monthly, yearly)", period)
	}
}

func newSummaryCommand() *cobra.Command {
	var dir string
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income and expense totals for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}
			filter, err := parseFilter(period)
			if err != nil {
				return err
			}

			txns, err := ledger.NewService(dataDir).List()
			if err != nil {
				return err
			}

			s := analytics.Summarize(txns, filter, time.Now())
			sym := cfg.Currency.Symbol
			fmt.Printf("%s\n\n", s.Period)
			fmt.Printf("Income:       %s%s\n", sym, s.TotalIncome.StringFixed(2))
			fmt.Printf("Expenses:     %s%s\n", sym, s.TotalExpenses.StringFixed(2))
			fmt.Printf("Net:          %s%s\n", sym, s.NetIncome.StringFixed(2))
			fmt.Printf("Transactions: %d\n", s.TransactionCount)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&period, "period", string(model.FilterMonthly), "period (daily, weekly, monthly, yearly)")

	return cmd
}

func newCategoriesCommand() *cobra.Command {
	var dir string
	var period string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show a per-category breakdown for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}
			filter, err := parseFilter(period)
			if err != nil {
				return err
			}

			txns, err := ledger.NewService(dataDir).List()
			if err != nil {
				return err
			}

			rows := analytics.ByCategory(txns, filter, time.Now())
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tAMOUNT\tCOUNT\tSHARE")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s%s\t%d\t%s%%\n",
					r.Category, cfg.Currency.Symbol, r.Amount.StringFixed(2),
					r.Count, r.Percentage.StringFixed(1))
			}
			return w.Flush()
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&period, "period", string(model.FilterMonthly), "period (daily, weekly, monthly, yearly)")

	return cmd
}
