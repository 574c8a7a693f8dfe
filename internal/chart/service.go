// Package chart maintains the chart of accounts: the set of account names a
// ledger declares, with their descriptions and opening balances.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/beanbook-dev/beanbook/internal/account"
	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

// Entry is a row in chart.csv.
type Entry struct {
	Name        string // full hierarchical account name
	Description string
	Open        decimal.Decimal // opening balance in the ledger currency
}

// Service provides in-memory lookup over the chart of accounts. Every entry
// name has been validated against the taxonomy at construction.
type Service struct {
	tax     *taxonomy.Taxonomy
	entries []Entry
	byName  map[string]Entry
}

// NewService validates entries and builds a Service. Malformed or
// duplicate account names fail construction; an unregistered root type
// surfaces account.ErrInvalidType.
func NewService(tax *taxonomy.Taxonomy, entries []Entry) (*Service, error) {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if !account.IsValid(e.Name) {
			return nil, fmt.Errorf("malformed account name %q", e.Name)
		}
		if _, err := account.New(tax, e.Name); err != nil {
			return nil, err
		}
		if _, dup := byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate account %q", e.Name)
		}
		byName[e.Name] = e
	}
	return &Service{tax: tax, entries: entries, byName: byName}, nil
}

// Load reads chart.csv from a ledger root and returns a Service.
func Load(tax *taxonomy.Taxonomy, ledgerRoot string) (*Service, error) {
	path := filepath.Join(ledgerRoot, "accounts", "chart.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(tax, entries)
}

// All returns all entries in declaration order.
func (s *Service) All() []Entry {
	return s.entries
}

// Get returns an entry by account name.
func (s *Service) Get(name string) (Entry, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Exists reports whether an account name is declared.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Account returns the typed account for a declared name.
func (s *Service) Account(name string) (account.Account, bool) {
	if !s.Exists(name) {
		return account.Account{}, false
	}
	a, err := account.New(s.tax, name)
	if err != nil {
		return account.Account{}, false
	}
	return a, true
}

// ByType returns all entries whose root type equals atype.
func (s *Service) ByType(atype string) []Entry {
	var result []Entry
	for _, e := range s.entries {
		if t, err := account.TypeOf(s.tax, e.Name); err == nil && t == atype {
			result = append(result, e)
		}
	}
	return result
}

// Children returns the entries directly under parent.
func (s *Service) Children(parent string) []Entry {
	var result []Entry
	for _, e := range s.entries {
		if account.Parent(e.Name) == parent {
			result = append(result, e)
		}
	}
	return result
}

// Sorted returns all entries in taxonomy order: rank of root type first,
// then name.
func (s *Service) Sorted() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	keyed := make(map[string]account.Key, len(out))
	for _, e := range out {
		k, err := account.NameSortKey(s.tax, e.Name)
		if err != nil {
			continue
		}
		keyed[e.Name] = k
	}
	sortEntries(out, keyed)
	return out
}

func sortEntries(entries []Entry, keys map[string]account.Key) {
	sort.Slice(entries, func(i, j int) bool {
		return keys[entries[i].Name].Less(keys[entries[j].Name])
	})
}

// BalanceSheet returns the entries classified as balance sheet accounts
// under the supplied naming options.
func (s *Service) BalanceSheet(options map[string]string) []Entry {
	return s.classified(options, account.IsBalanceSheet)
}

// IncomeStatement returns the entries classified as income statement
// accounts under the supplied naming options.
func (s *Service) IncomeStatement(options map[string]string) []Entry {
	return s.classified(options, account.IsIncomeStatement)
}

func (s *Service) classified(options map[string]string, pred func(account.Account, map[string]string) bool) []Entry {
	var result []Entry
	for _, e := range s.entries {
		a, ok := s.Account(e.Name)
		if ok && pred(a, options) {
			result = append(result, e)
		}
	}
	return result
}

// Save writes the chart to <ledgerRoot>/accounts/chart.csv.
func (s *Service) Save(ledgerRoot string) error {
	dir := filepath.Join(ledgerRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteEntries(f, s.entries); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
