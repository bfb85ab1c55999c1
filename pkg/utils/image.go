package utils

import "strings"

// NormalizeImageURL resolves a relative upstream image path against base.
// Absolute URLs pass through, empty input yields nil.
func NormalizeImageURL(base string, path *string) *string {
	if path == nil {
		return nil
	}
	p := strings.TrimSpace(*path)
	if p == "" {
		return nil
	}
	if strings.HasPrefix(p, "http") {
		return &p
	}

	out := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
	return &out
}

// FirstNonEmpty returns the first non-blank candidate.
func FirstNonEmpty(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return c
		}
	}
	return nil
}
