package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beanbook-dev/beanbook/internal/account"
	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

// Config represents the top-level beanbook.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Names  NamesConfig  `yaml:"names"`
}

// LedgerConfig identifies the ledger.
type LedgerConfig struct {
	Title    string `yaml:"title"`
	Currency string `yaml:"currency"`
}

// NamesConfig carries the root-type names in effect for a ledger. A ledger
// may rename the conventional English names per locale; everything
// downstream derives its taxonomy and naming options from this block.
type NamesConfig struct {
	Assets      string `yaml:"name_assets"`
	Liabilities string `yaml:"name_liabilities"`
	Equity      string `yaml:"name_equity"`
	Income      string `yaml:"name_income"`
	Expenses    string `yaml:"name_expenses"`
}

// Options returns the naming options consumed by the account classification
// predicates.
func (n NamesConfig) Options() map[string]string {
	return map[string]string{
		account.OptNameAssets:      n.Assets,
		account.OptNameLiabilities: n.Liabilities,
		account.OptNameEquity:      n.Equity,
		account.OptNameIncome:      n.Income,
		account.OptNameExpenses:    n.Expenses,
	}
}

// Taxonomy returns the root-type set in effect, ranked assets, liabilities,
// equity, income, expenses.
func (n NamesConfig) Taxonomy() *taxonomy.Taxonomy {
	return taxonomy.New(n.Assets, n.Liabilities, n.Equity, n.Income, n.Expenses)
}

// Load reads a beanbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the conventional English root-type names.
func Default(title, currency string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			Title:    title,
			Currency: currency,
		},
		Names: NamesConfig{
			Assets:      "Assets",
			Liabilities: "Liabilities",
			Equity:      "Equity",
			Income:      "Income",
			Expenses:    "Expenses",
		},
	}
}
