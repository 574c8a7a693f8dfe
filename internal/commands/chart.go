package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbook-dev/beanbook/internal/chart"
)

func newChartCommand() *cobra.Command {
	var dir string
	var balanceSheet bool
	var incomeStatement bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "List the chart of accounts in taxonomy order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if balanceSheet && incomeStatement {
				return fmt.Errorf("--balance-sheet and --income-statement are mutually exclusive")
			}

			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}
			tax := cfg.Names.Taxonomy()

			svc, err := chart.Load(tax, dir)
			if err != nil {
				return err
			}

			entries := svc.Sorted()
			switch {
			case balanceSheet:
				entries = selectEntries(entries, svc.BalanceSheet(cfg.Names.Options()))
			case incomeStatement:
				entries = selectEntries(entries, svc.IncomeStatement(cfg.Names.Options()))
			}

			for _, e := range entries {
				if e.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Name, e.Description)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), e.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "ledger", ".", "ledger directory")
	cmd.Flags().BoolVar(&balanceSheet, "balance-sheet", false, "only balance sheet accounts")
	cmd.Flags().BoolVar(&incomeStatement, "income-statement", false, "only income statement accounts")

	return cmd
}

// selectEntries keeps the sorted entries that also appear in the filtered
// set, preserving sort order.
func selectEntries(sorted, filtered []chart.Entry) []chart.Entry {
	keep := make(map[string]bool, len(filtered))
	for _, e := range filtered {
		keep[e.Name] = true
	}
	var out []chart.Entry
	for _, e := range sorted {
		if keep[e.Name] {
			out = append(out, e)
		}
	}
	return out
}
