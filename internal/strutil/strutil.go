// Package strutil holds the small string helpers shared by models and services.
package strutil

import "strings"

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNonBlank evaluates candidates left to right and returns the first
// non-blank value, trimmed. It returns "" when every candidate is blank.
func FirstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return ""
}

// FirstNonBlankOf is FirstNonBlank over lazily evaluated accessors.
func FirstNonBlankOf(accessors ...func() string) string {
	for _, get := range accessors {
		if get == nil {
			continue
		}
		if t := strings.TrimSpace(get()); t != "" {
			return t
		}
	}
	return ""
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NormalizeCode trims and upper-cases an identifier such as a flight designator
// or airport code.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
