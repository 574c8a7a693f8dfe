package account

import (
	"sort"

	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

// Key orders accounts by the taxonomy rank of their type, then by name
// compared byte-wise.
type Key struct {
	Rank int
	Name string
}

// Less reports whether k orders before other.
func (k Key) Less(other Key) bool {
	if k.Rank != other.Rank {
		return k.Rank < other.Rank
	}
	return k.Name < other.Name
}

// SortKey returns the ordering key for an account.
func SortKey(tax *taxonomy.Taxonomy, a Account) Key {
	return Key{Rank: tax.Rank(a.Type), Name: a.Name}
}

// NameSortKey returns the ordering key for an account name, deriving its
// type first. It fails the same way TypeOf does.
func NameSortKey(tax *taxonomy.Taxonomy, name string) (Key, error) {
	atype, err := TypeOf(tax, name)
	if err != nil {
		return Key{}, err
	}
	return Key{Rank: tax.Rank(atype), Name: name}, nil
}

// Compare orders two accounts by SortKey, returning -1, 0, or 1.
func Compare(tax *taxonomy.Taxonomy, a, b Account) int {
	ka, kb := SortKey(tax, a), SortKey(tax, b)
	switch {
	case ka.Less(kb):
		return -1
	case kb.Less(ka):
		return 1
	}
	return 0
}

// Sort orders accounts in place by taxonomy rank, then name.
func Sort(tax *taxonomy.Taxonomy, accounts []Account) {
	sort.Slice(accounts, func(i, j int) bool {
		return SortKey(tax, accounts[i]).Less(SortKey(tax, accounts[j]))
	})
}

// SortNames orders account names in place by taxonomy rank, then name. It
// fails if any name's root type is unregistered; the slice is left
// untouched in that case.
func SortNames(tax *taxonomy.Taxonomy, names []string) error {
	keys := make([]Key, len(names))
	for i, n := range names {
		k, err := NameSortKey(tax, n)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	sort.Sort(&byKey{names: names, keys: keys})
	return nil
}

type byKey struct {
	names []string
	keys  []Key
}

func (s *byKey) Len() int           { return len(s.names) }
func (s *byKey) Less(i, j int) bool { return s.keys[i].Less(s.keys[j]) }
func (s *byKey) Swap(i, j int) {
	s.names[i], s.names[j] = s.names[j], s.names[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
