package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters case files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether the base name of name matches pattern.
// Supports patterns like "*.sol", "*shadowing*" or a plain substring.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	base := filepath.Base(name)

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, base); err == nil && matched {
		return true
	}

	// Patterns like "*shadow*" also match when every part appears in order
	if strings.Contains(pattern, "*") {
		rest := base
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			i := strings.Index(rest, part)
			if i < 0 {
				return false
			}
			rest = rest[i+len(part):]
		}
		return hasPart
	}

	// Without wildcards, fall back to a substring check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(base, pattern)
	}
	return false
}
