package nstag

import (
	"strings"
)

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// splitKindTokens splits by kind list separators: comma, pipe, plus, slash, space.
// Dashes are kept so "pre-release" stays one token.
func splitKindTokens(s string) []string {
	s = toTok(s)
	if s == "" {
		return nil
	}

	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', '|', '+', '/', ' ', '\t', ';':
			return true
		default:
			return false
		}
	})
}

// capTags returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capTags(out []Tag, limit int) []Tag {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}

// NormalizeNamespace trims spaces and surrounding slashes from a namespace
// given on the command line, so "api/" and " api " both mean "api".
func NormalizeNamespace(ns string) string {
	return strings.Trim(strings.TrimSpace(ns), "/")
}
