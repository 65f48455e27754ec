package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/ledger"
)

func newDeleteCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded transaction",
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

			if err := ledger.NewService(dataDir).Delete(args[0]); err != nil {
				return err
			}

			recordActivity(dataDir, cfg, "delete", args[0])
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
