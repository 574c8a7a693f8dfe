package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

func defaultOptions() map[string]string {
	return map[string]string{
		OptNameAssets:      "Assets",
		OptNameLiabilities: "Liabilities",
		OptNameEquity:      "Equity",
		OptNameIncome:      "Income",
		OptNameExpenses:    "Expenses",
	}
}

func TestIsBalanceSheet(t *testing.T) {
	tax := taxonomy.Default()
	options := defaultOptions()

	tests := []struct {
		name string
		want bool
	}{
		{"Assets:US:Checking", true},
		{"Liabilities:US:CreditCard", true},
		{"Equity:Opening-Balances", true},
		{"Income:Salary", false},
		{"Expenses:Food:Groceries", false},
	}
	for _, tt := range tests {
		a := mustNew(t, tax, tt.name)
		assert.Equal(t, tt.want, IsBalanceSheet(a, options), "account: %s", tt.name)
	}
}

func TestIsIncomeStatement(t *testing.T) {
	tax := taxonomy.Default()
	options := defaultOptions()

	tests := []struct {
		name string
		want bool
	}{
		{"Income:Salary", true},
		{"Expenses:Transport", true},
		{"Assets:Cash", false},
		{"Liabilities:US:CreditCard", false},
		{"Equity:Opening-Balances", false},
	}
	for _, tt := range tests {
		a := mustNew(t, tax, tt.name)
		assert.Equal(t, tt.want, IsIncomeStatement(a, options), "account: %s", tt.name)
	}
}

func TestClassify_RenamedTypes(t *testing.T) {
	tax := taxonomy.New("Actif", "Passif", "Capital", "Revenus", "Depenses")
	options := map[string]string{
		OptNameAssets:      "Actif",
		OptNameLiabilities: "Passif",
		OptNameEquity:      "Capital",
		OptNameIncome:      "Revenus",
		OptNameExpenses:    "Depenses",
	}

	assert.True(t, IsBalanceSheet(mustNew(t, tax, "Actif:Banque"), options))
	assert.True(t, IsIncomeStatement(mustNew(t, tax, "Depenses:Loyer"), options))
	assert.False(t, IsBalanceSheet(mustNew(t, tax, "Revenus:Salaire"), options))
}
