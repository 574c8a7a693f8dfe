package account

import "github.com/beanbook-dev/beanbook/internal/taxonomy"

// CoerceStringMap returns a copy of values in which every string value that
// looks like an account name and constructs cleanly is replaced by its
// Account. All other values, non-strings and strings failing the grammar or
// type check alike, pass through unchanged. Coercion never fails.
//
// This lets importer configurations bind roles to plain account-name
// strings and receive typed accounts back.
func CoerceStringMap(tax *taxonomy.Taxonomy, values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, v := range values {
		if s, ok := v.(string); ok && IsValid(s) {
			if a, err := New(tax, s); err == nil {
				out[key] = a
				continue
			}
		}
		out[key] = v
	}
	return out
}
