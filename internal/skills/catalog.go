package skills

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultPatterns lists the built-in recognition rules. Multi-word and
// punctuation-bearing skills are single patterns, so "c++" and "node.js"
// survive as whole tokens instead of being split.
var defaultPatterns = []string{
	`rust\b`, `c\+\+`, `python\b`, `java\b`, `sql\b`, `postgresql\b`,
	`docker\b`, `kubernetes\b`, `linux\b`, `html\b`, `css\b`, `javascript\b`,
	`react\b`, `node\.?js\b`, `nlp\b`, `natural language processing\b`,
}

// Catalog is an immutable list of compiled skill patterns. It is built once
// at startup and never mutated afterwards, so it is safe for unsynchronized
// concurrent use by any number of workers.
type Catalog struct {
	patterns []*regexp.Regexp
}

var defaultCatalog = mustDefault()

// Default returns the process-wide catalog of built-in skill patterns.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog compiles the built-in patterns together with any extra patterns
// from configuration. All patterns match case-insensitively.
func NewCatalog(extra ...string) (*Catalog, error) {
	patterns := make([]string, 0, len(defaultPatterns)+len(extra))
	patterns = append(patterns, defaultPatterns...)
	patterns = append(patterns, extra...)

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid skill pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Catalog{patterns: compiled}, nil
}

func mustDefault() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Extract scans text against every pattern in the catalog and returns the
// set of lower-cased matched substrings. Two patterns matching overlapping
// but distinct substrings both contribute their own matched text. Unmatched
// text contributes nothing; empty input yields an empty set.
func (c *Catalog) Extract(text string) Set {
	found := make(Set)
	for _, re := range c.patterns {
		for _, match := range re.FindAllString(text, -1) {
			found[strings.ToLower(match)] = true
		}
	}
	return found
}

// Extract runs the default catalog against text.
func Extract(text string) Set {
	return defaultCatalog.Extract(text)
}
