package nstag

import (
	"fmt"
	"strconv"
)

// Parse parses a raw tag name into a Tag.
//
// Accepted form is "<namespace>/[v]MAJOR.MINOR.PATCH[-N]" where namespace is
// made of letters, digits, '_' and '-'. Numeric components with leading zeros
// parse as their numeric value. Any other input yields a *ParseError wrapping
// ErrMalformed.
func Parse(raw string) (Tag, error) {
	m := tagRe.FindStringSubmatch(raw)
	if m == nil {
		return Tag{}, &ParseError{Raw: raw}
	}

	nums := [3]int{}
	for i := range nums {
		n, err := strconv.Atoi(m[i+2])
		if err != nil {
			return Tag{}, &ParseError{Raw: raw, Err: err}
		}

		nums[i] = n
	}

	t := NewTag(m[1], nums[0], nums[1], nums[2])
	if m[6] != "" {
		n, err := strconv.Atoi(m[6])
		if err != nil {
			return Tag{}, &ParseError{Raw: raw, Err: err}
		}

		t = t.WithPre(n)
	}

	return t, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for fixtures and package-level values.
func MustParse(raw string) Tag {
	t, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("nstag.MustParse: %v", err))
	}

	return t
}

// Format renders t in canonical form "<namespace>/vMAJOR.MINOR.PATCH[-N]".
// It is the inverse of Parse: Parse(Format(t)) == t for every valid t.
func Format(t Tag) string {
	return t.Namespace + "/" + t.Short()
}

// ValidNamespace reports whether ns can prefix a tag.
func ValidNamespace(ns string) bool {
	return namespaceRe.MatchString(ns)
}
