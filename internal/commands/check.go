package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbook-dev/beanbook/internal/account"
)

func newCheckCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check <account>...",
		Short: "Validate account names against the ledger taxonomy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}
			tax := cfg.Names.Taxonomy()

			invalid := 0
			for _, name := range args {
				if !account.IsValid(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: malformed account name\n", name)
					invalid++
					continue
				}
				if _, err := account.New(tax, name); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
					invalid++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}

			if invalid > 0 {
				return fmt.Errorf("%d invalid account name(s)", invalid)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "ledger", ".", "ledger directory")

	return cmd
}
