package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/bankstore"
	"github.com/tallybook-dev/tallybook/internal/ledger"
	"github.com/tallybook-dev/tallybook/internal/match"
	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/report"
)

// runMatch loads both stores and runs one matching pass.
func runMatch(dataDir string) (model.MatchResult, error) {
	users, err := ledger.NewService(dataDir).List()
	if err != nil {
		return model.MatchResult{}, err
	}

	bank, err := bankstore.NewStore(dataDir).List()
	if err != nil {
		return model.MatchResult{}, err
	}
	if len(bank) == 0 {
		return model.MatchResult{}, fmt.Errorf("no bank statement uploaded (run 'tallybook import' first)")
	}

	return match.Match(users, bank), nil
}

func newReconcileCommand() *cobra.Command {
	var dir string
	var output string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match recorded transactions against the uploaded bank statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			result, err := runMatch(dataDir)
			if err != nil {
				return err
			}

			if err := ledger.NewService(dataDir).ApplyMatches(result); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"matched":       len(result.Matched),
				"unmatched":     len(result.Unmatched),
				"discrepancies": len(result.Discrepancies),
			}).Info("reconcile complete")

			text := report.Reconciliation(result, cfg.Currency.Symbol)
			if output != "" {
				if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			} else {
				fmt.Print(text)
			}

			recordActivity(dataDir, cfg, "reconcile",
				fmt.Sprintf("%d matched, %d unmatched, %d discrepancies",
					len(result.Matched), len(result.Unmatched), len(result.Discrepancies)))
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&output, "output", "", "write the report to a file instead of stdout")

	return cmd
}

func newReportCommand() *cobra.Command {
	var dir string
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the matching report without persisting match results",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			result, err := runMatch(dataDir)
			if err != nil {
				return err
			}

			text := report.Reconciliation(result, cfg.Currency.Symbol)
			if output != "" {
				if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				return nil
			}
			fmt.Print(text)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&output, "output", "", "write the report to a file instead of stdout")

	return cmd
}
