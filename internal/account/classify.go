package account

// Option keys naming the root types in effect for a ledger. Root types may
// be renamed per locale, so classification goes through these keys rather
// than the literal English names.
const (
	OptNameAssets      = "name_assets"
	OptNameLiabilities = "name_liabilities"
	OptNameEquity      = "name_equity"
	OptNameIncome      = "name_income"
	OptNameExpenses    = "name_expenses"
)

// IsBalanceSheet reports whether a is a balance sheet account: an asset,
// liability, or equity account under the supplied naming options.
func IsBalanceSheet(a Account, options map[string]string) bool {
	switch a.Type {
	case options[OptNameAssets], options[OptNameLiabilities], options[OptNameEquity]:
		return true
	}
	return false
}

// IsIncomeStatement reports whether a is an income statement account: an
// income or expense account under the supplied naming options.
func IsIncomeStatement(a Account, options map[string]string) bool {
	switch a.Type {
	case options[OptNameIncome], options[OptNameExpenses]:
		return true
	}
	return false
}
