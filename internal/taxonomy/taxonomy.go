// Package taxonomy owns the set of root account types and their canonical
// ordering. A ledger's taxonomy is fixed at load time and never mutated, so
// a Taxonomy is safe to share across goroutines.
package taxonomy

// Taxonomy is an ordered set of root account type names.
type Taxonomy struct {
	order []string
	rank  map[string]int
}

// New builds a Taxonomy from root-type names given in rank order.
func New(types ...string) *Taxonomy {
	order := make([]string, len(types))
	rank := make(map[string]int, len(types))
	for i, name := range types {
		order[i] = name
		rank[name] = i
	}
	return &Taxonomy{order: order, rank: rank}
}

// Default returns the conventional five root types, ranked
// Assets < Liabilities < Equity < Income < Expenses.
func Default() *Taxonomy {
	return New("Assets", "Liabilities", "Equity", "Income", "Expenses")
}

// Contains reports whether name is a registered root type.
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.rank[name]
	return ok
}

// Rank returns the sort position of a root type, or -1 if unregistered.
func (t *Taxonomy) Rank(name string) int {
	r, ok := t.rank[name]
	if !ok {
		return -1
	}
	return r
}

// Types returns the root types in rank order.
func (t *Taxonomy) Types() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
