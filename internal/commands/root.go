package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beanbook-dev/beanbook/internal/buildinfo"
	"github.com/beanbook-dev/beanbook/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "beanbook",
		Short:   "Hierarchical account tooling for plain-text ledgers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newSortCommand())
	rootCmd.AddCommand(newChartCommand())

	return rootCmd
}

// loadConfig reads beanbook.yaml from a ledger directory, falling back to
// the conventional defaults when no config file exists yet.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, "beanbook.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return config.Default("", "USD"), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
