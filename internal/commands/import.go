package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/bankstore"
	"github.com/tallybook-dev/tallybook/internal/statement"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Upload a bank statement CSV, replacing the stored statement",
		Long: "Parses a bank statement CSV and replaces the stored bank transaction\n" +
			"set. Without an argument, the pending file in <dir>/import/ is used and\n" +
			"moved to import/processed/ afterwards.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(dir)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dataDir)
			if err != nil {
				return err
			}

			path := ""
			fromImportDir := false
			if len(args) > 0 {
				path = args[0]
			} else {
				files, err := statement.ScanDir(dataDir)
				if err != nil {
					return err
				}
				switch len(files) {
				case 0:
					return fmt.Errorf("no statement CSVs pending in %s", filepath.Join(dataDir, "import"))
				case 1:
					path = files[0].Path
					fromImportDir = true
				default:
					names := make([]string, len(files))
					for i, f := range files {
						names[i] = f.Name
					}
					return fmt.Errorf("multiple statements pending (%s); pass one explicitly", strings.Join(names, ", "))
				}
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading statement: %w", err)
			}

			txns, notes := statement.Parse(string(data))
			for _, n := range notes {
				log.WithField("line", n.Line).Warn(n.Reason)
			}
			if len(txns) == 0 {
				return fmt.Errorf("no valid transactions found in %s", path)
			}

			if err := bankstore.NewStore(dataDir).Replace(txns); err != nil {
				return err
			}

			if fromImportDir {
				if err := statement.MarkProcessed(dataDir, filepath.Base(path)); err != nil {
					return err
				}
			}

			recordActivity(dataDir, cfg, "import", fmt.Sprintf("%s: %d bank transactions", filepath.Base(path), len(txns)))
			fmt.Printf("Imported %d bank transactions from %s\n", len(txns), filepath.Base(path))
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
