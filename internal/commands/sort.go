package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbook-dev/beanbook/internal/account"
)

func newSortCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "sort <account>...",
		Short: "Sort account names in taxonomy order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			names := make([]string, len(args))
			copy(names, args)
			if err := account.SortNames(cfg.Names.Taxonomy(), names); err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "ledger", ".", "ledger directory")

	return cmd
}
