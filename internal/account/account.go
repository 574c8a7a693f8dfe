// Package account defines hierarchical account identifiers and classifies
// them into root types.
//
// Accounts here are identity only: they carry no postings or balances.
// Associating transactions with accounts is the job of higher layers.
package account

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beanbook-dev/beanbook/internal/taxonomy"
)

// ErrInvalidType reports an account name whose first segment is not a
// registered root type.
var ErrInvalidType = errors.New("invalid account type")

// Separator joins the segments of an account name.
const Separator = ":"

// nameRe matches a well-formed account name: two or more colon-separated
// segments, each starting with an uppercase letter and at least two
// characters long.
var nameRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9-]+(:[A-Z][A-Za-z0-9-]+)+$`)

// Account identifies a ledger account by its colon-separated name and the
// root type derived from its first segment. Accounts compare by value; a
// constructed Account always satisfies Type == first segment of Name.
type Account struct {
	Name string
	Type string
}

// New constructs an Account from its name. The first segment must be a
// registered root type; otherwise New returns an error wrapping
// ErrInvalidType and no Account.
func New(tax *taxonomy.Taxonomy, name string) (Account, error) {
	atype, err := TypeOf(tax, name)
	if err != nil {
		return Account{}, err
	}
	return Account{Name: name, Type: atype}, nil
}

// TypeOf returns the root type of an account name, its first segment. It
// returns an error wrapping ErrInvalidType if that segment is unregistered.
func TypeOf(tax *taxonomy.Taxonomy, name string) (string, error) {
	atype, _, _ := strings.Cut(name, Separator)
	if !tax.Contains(atype) {
		return "", fmt.Errorf("%w %q in account name %q", ErrInvalidType, atype, name)
	}
	return atype, nil
}

// Parent returns name with its final segment removed. A name with no
// separator, including the empty string, has no parent and yields "".
func Parent(name string) string {
	i := strings.LastIndex(name, Separator)
	if i < 0 {
		return ""
	}
	return name[:i]
}

// Leaf returns the final segment of name, or "" if name is empty.
func Leaf(name string) string {
	i := strings.LastIndex(name, Separator)
	return name[i+1:]
}

// Split returns the segments of name, or nil for the empty name.
func Split(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, Separator)
}

// Join assembles segments into an account name.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// HasParent reports whether name has at least one level above its leaf.
func HasParent(name string) bool {
	return strings.Contains(name, Separator)
}

// Depth returns the number of segments in name, 0 for the empty name.
func Depth(name string) int {
	if name == "" {
		return 0
	}
	return strings.Count(name, Separator) + 1
}

// IsValid reports whether text has the form of an account name. It never
// fails: malformed input simply yields false. A bare root-type name has no
// child segment and is not a valid account name, even though IsRoot
// accepts it.
func IsValid(text string) bool {
	return nameRe.MatchString(text)
}

// IsRoot reports whether name is exactly one of the registered root types.
func IsRoot(tax *taxonomy.Taxonomy, name string) bool {
	return tax.Contains(name)
}
