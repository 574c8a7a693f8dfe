package chart

import "github.com/shopspring/decimal"

// DefaultChart returns a starter chart of accounts for a personal ledger.
func DefaultChart() []Entry {
	return []Entry{
		{Name: "Assets:US:Checking", Description: "Primary checking account", Open: decimal.Zero},
		{Name: "Assets:US:Savings", Description: "Savings account", Open: decimal.Zero},
		{Name: "Assets:Cash", Description: "Cash on hand", Open: decimal.Zero},
		{Name: "Liabilities:US:CreditCard", Description: "Credit card", Open: decimal.Zero},
		{Name: "Equity:Opening-Balances", Description: "Opening balances", Open: decimal.Zero},
		{Name: "Income:Salary", Description: "Salary and wages", Open: decimal.Zero},
		{Name: "Income:Interest", Description: "Interest earned", Open: decimal.Zero},
		{Name: "Expenses:Food:Groceries", Description: "Groceries", Open: decimal.Zero},
		{Name: "Expenses:Food:Restaurant", Description: "Dining out", Open: decimal.Zero},
		{Name: "Expenses:Home:Rent", Description: "Rent", Open: decimal.Zero},
		{Name: "Expenses:Transport", Description: "Transport and transit", Open: decimal.Zero},
	}
}
