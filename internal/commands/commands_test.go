package commands_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanbook-dev/beanbook/internal/chart"
	"github.com/beanbook-dev/beanbook/internal/commands"
	"github.com/beanbook-dev/beanbook/internal/config"
	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

func runBeanbook(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInit_CreatesLedger(t *testing.T) {
	dir := t.TempDir()

	_, err := runBeanbook(t, "init", dir, "--title", "Test Ledger", "--currency", "EUR")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "beanbook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Test Ledger", cfg.Ledger.Title)
	assert.Equal(t, "EUR", cfg.Ledger.Currency)

	svc, err := chart.Load(cfg.Names.Taxonomy(), dir)
	require.NoError(t, err)
	assert.NotEmpty(t, svc.All())
}

func TestInit_RequiresTitle(t *testing.T) {
	_, err := runBeanbook(t, "init", t.TempDir())
	require.Error(t, err)
}

func TestCheck_ValidNames(t *testing.T) {
	out, err := runBeanbook(t, "check", "--ledger", t.TempDir(),
		"Assets:US:Checking", "Income:Salary")
	require.NoError(t, err)
	assert.Contains(t, out, "Assets:US:Checking: ok")
	assert.Contains(t, out, "Income:Salary: ok")
}

func TestCheck_InvalidNames(t *testing.T) {
	out, err := runBeanbook(t, "check", "--ledger", t.TempDir(),
		"assets:US:Checking", "Foo:Bar", "Expenses:Transport")
	require.Error(t, err)
	assert.Contains(t, out, "assets:US:Checking: malformed account name")
	assert.Contains(t, out, "invalid account type")
	assert.Contains(t, out, "Expenses:Transport: ok")
}

func TestSort_TaxonomyOrder(t *testing.T) {
	out, err := runBeanbook(t, "sort", "--ledger", t.TempDir(),
		"Income:Salary", "Expenses:Transport", "Assets:Cash", "Liabilities:US:CreditCard")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"Assets:Cash",
		"Liabilities:US:CreditCard",
		"Income:Salary",
		"Expenses:Transport",
	}, lines)
}

func TestSort_InvalidType(t *testing.T) {
	_, err := runBeanbook(t, "sort", "--ledger", t.TempDir(), "Foo:Bar")
	require.Error(t, err)
}

func TestChart_ListsSorted(t *testing.T) {
	dir := initLedger(t)

	out, err := runBeanbook(t, "chart", "--ledger", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(chart.DefaultChart()))
	assert.True(t, strings.HasPrefix(lines[0], "Assets:Cash"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Expenses:Transport"))
}

func TestChart_Filters(t *testing.T) {
	dir := initLedger(t)

	bsOut, err := runBeanbook(t, "chart", "--ledger", dir, "--balance-sheet")
	require.NoError(t, err)
	isOut, err := runBeanbook(t, "chart", "--ledger", dir, "--income-statement")
	require.NoError(t, err)

	assert.Contains(t, bsOut, "Assets:US:Checking")
	assert.NotContains(t, bsOut, "Income:Salary")
	assert.Contains(t, isOut, "Income:Salary")
	assert.NotContains(t, isOut, "Assets:US:Checking")

	bsLines := strings.Split(strings.TrimSpace(bsOut), "\n")
	isLines := strings.Split(strings.TrimSpace(isOut), "\n")
	assert.Len(t, bsLines, 5)
	assert.Len(t, isLines, 6)
}

func TestChart_FiltersMutuallyExclusive(t *testing.T) {
	dir := initLedger(t)

	_, err := runBeanbook(t, "chart", "--ledger", dir, "--balance-sheet", "--income-statement")
	require.Error(t, err)
}

func TestChart_MissingLedger(t *testing.T) {
	_, err := runBeanbook(t, "chart", "--ledger", t.TempDir())
	require.Error(t, err)
}

func initLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	svc, err := chart.NewService(taxonomy.Default(), chart.DefaultChart())
	require.NoError(t, err)
	require.NoError(t, svc.Save(dir))
	require.NoError(t, config.Save(filepath.Join(dir, "beanbook.yaml"), config.Default("Test", "USD")))
	return dir
}
