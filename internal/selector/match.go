package selector

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// newMatchWords builds a fuzzy word matcher for the given query: each
// query word must prefix-match a word of the candidate, or sit within
// edit distance one of it. Matching is case-insensitive.
func newMatchWords(query string) func(string) bool {
	words := strings.Fields(strings.ToLower(query))
	return func(name string) bool {
		nameWords := strings.Fields(strings.ToLower(name))
		for _, q := range words {
			if !matchWord(q, nameWords) {
				return false
			}
		}
		return true
	}
}

func matchWord(q string, nameWords []string) bool {
	for _, w := range nameWords {
		if strings.HasPrefix(w, q) {
			return true
		}
		if levenshtein.ComputeDistance(q, w) <= 1 {
			return true
		}
	}
	return false
}
