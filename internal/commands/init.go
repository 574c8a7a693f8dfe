package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beanbook-dev/beanbook/internal/chart"
	"github.com/beanbook-dev/beanbook/internal/config"
)

func newInitCommand() *cobra.Command {
	var title string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new beanbook ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, title, currency)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "ledger title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ledger currency")

	return cmd
}

func runInit(dir, title, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	cfg := config.Default(title, currency)
	if err := config.Save(filepath.Join(dir, "beanbook.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc, err := chart.NewService(cfg.Names.Taxonomy(), chart.DefaultChart())
	if err != nil {
		return fmt.Errorf("building default chart: %w", err)
	}
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	return nil
}
