// Package importer holds the account bindings importers are configured
// with. A role map is written in YAML with plain strings for values; any
// string shaped like an account name is coerced into a typed Account at
// load time, so importers work with validated accounts rather than raw
// text.
package importer

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/beanbook-dev/beanbook/internal/account"
	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

// Config maps importer roles (e.g. "cash", "fees") to values. Values that
// were account-name strings have been coerced to account.Account.
type Config struct {
	values map[string]any
}

// New builds a Config from a raw role map, coercing account-name strings.
func New(tax *taxonomy.Taxonomy, raw map[string]any) *Config {
	return &Config{values: account.CoerceStringMap(tax, raw)}
}

// Load reads a role map from a YAML file.
func Load(tax *taxonomy.Taxonomy, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading importer config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing importer config: %w", err)
	}
	return New(tax, raw), nil
}

// Resolve returns the account bound to a role. It reports false when the
// role is absent or its value did not coerce to an account.
func (c *Config) Resolve(role string) (account.Account, bool) {
	a, ok := c.values[role].(account.Account)
	return a, ok
}

// Value returns the raw value bound to a role.
func (c *Config) Value(role string) (any, bool) {
	v, ok := c.values[role]
	return v, ok
}

// Roles returns the configured role keys in lexical order.
func (c *Config) Roles() []string {
	roles := make([]string, 0, len(c.values))
	for k := range c.values {
		roles = append(roles, k)
	}
	sort.Strings(roles)
	return roles
}
