// Package skills recognizes known skill tokens inside free text and provides
// set operations over them.
package skills

import (
	"sort"
	"strings"
)

// Set is a deduplicated collection of normalized (lower-cased) skill tokens.
type Set map[string]bool

// NewSet builds a set from raw skill names. Each name is trimmed and
// lower-cased; empty names are dropped.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		s[normalized] = true
	}
	return s
}

// Has reports whether the token is a member of the set.
func (s Set) Has(token string) bool {
	return s[token]
}

// Union returns a new set containing members of both s and other.
func (s Set) Union(other Set) Set {
	union := make(Set, len(s)+len(other))
	for token := range s {
		union[token] = true
	}
	for token := range other {
		union[token] = true
	}
	return union
}

// Intersect returns a new set containing members present in both s and other.
func (s Set) Intersect(other Set) Set {
	intersection := make(Set)
	for token := range s {
		if other[token] {
			intersection[token] = true
		}
	}
	return intersection
}

// Sorted returns the members in lexicographic order so serialized output is
// reproducible.
func (s Set) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
