package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/auditlog"
	"github.com/tallybook-dev/tallybook/internal/config"
	"github.com/tallybook-dev/tallybook/internal/gitops"
)

// dataDirEnv overrides the default data directory when the --dir flag is
// left at its default. Set it in the environment or a .env file.
const dataDirEnv = "TALLYBOOK_DIR"

// addDirFlag registers the shared --dir flag on a command.
func addDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "dir", ".", "data directory")
}

// resolveDataDir turns the --dir flag into an absolute data directory,
// honoring the TALLYBOOK_DIR environment override.
func resolveDataDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "." {
		if env := os.Getenv(dataDirEnv); env != "" {
			dir = env
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// loadConfig reads tallybook.yaml from the data directory.
func loadConfig(dataDir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dataDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading %s (run 'tallybook init'?): %w", config.FileName, err)
	}
	return cfg, nil
}

// recordActivity commits the data directory when auto-commit is on and
// appends an activity log entry. Both are best-effort; failures are logged
// as warnings and never fail the command that did the real work.
func recordActivity(dataDir string, cfg *config.Config, action, details string) {
	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(dataDir) {
		h, err := gitops.CommitAll(dataDir, action+": "+details, gitops.Author{
			Name:  cfg.Git.AuthorName,
			Email: cfg.Git.AuthorEmail,
		})
		if err != nil {
			log.WithError(err).Warn("auto-commit failed")
		} else {
			hash = h
		}
	}

	if err := auditlog.Record(dataDir, action, details, hash); err != nil {
		log.WithError(err).Warn("writing activity log failed")
	}
}
