// Package suggest derives autocomplete candidates and duplicate-entry hints
// from the existing set of meals. Both computations are cheap linear scans
// recomputed from scratch on every keystroke, so no state is carried between
// calls.
package suggest

import (
	"sort"

	"middag/internal/textutil"
)

// Suggestions returns candidate completions for query drawn from values.
//
// An exactly empty query yields no suggestions; a whitespace-only query still
// runs the filter. Values are deduplicated by exact string equality, so two
// values differing only in case stay distinct candidates. A value that is a
// case-insensitive match of the query itself is excluded. The result is
// sorted ascending byte-wise, so uppercase ASCII sorts before lowercase and
// multi-byte letters sort last.
func Suggestions(values []string, query string) []string {
	if query == "" {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}

		if textutil.ContainsFold(v, query) && !textutil.EqualFold(v, query) {
			out = append(out, v)
		}
	}

	sort.Strings(out)
	return out
}
