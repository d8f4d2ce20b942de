package nstag

import (
	"fmt"
	"sort"
	"strings"
)

// BumpKind is the category of version increment a tag represents or a
// release requests.
type BumpKind uint8

const (
	// BumpMajor is X.0.0.
	BumpMajor BumpKind = iota + 1
	// BumpMinor is X.Y.0 with Y > 0.
	BumpMinor
	// BumpPatch is X.Y.Z with Z > 0.
	BumpPatch
	// BumpPreRelease is any X.Y.Z-N release candidate.
	BumpPreRelease
)

const validKindsText = "major, minor, patch, rc"

// Kinds lists every bump kind in declaration order.
func Kinds() []BumpKind {
	return []BumpKind{BumpMajor, BumpMinor, BumpPatch, BumpPreRelease}
}

// Valid reports whether k is one of the four declared kinds.
func (k BumpKind) Valid() bool {
	return k >= BumpMajor && k <= BumpPreRelease
}

// String returns "major", "minor", "patch" or "rc".
func (k BumpKind) String() string {
	switch k {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpPreRelease:
		return "rc"
	default:
		return fmt.Sprintf("BumpKind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name.
func (k BumpKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBumpKind, uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes any alias accepted by ParseBumpKind.
func (k *BumpKind) UnmarshalText(b []byte) error {
	v, err := ParseBumpKind(string(b))
	if err != nil {
		return err
	}

	*k = v

	return nil
}

// ParseBumpKind maps free-form tokens to BumpKind.
// Supported aliases (case-insensitive):
//
//	major: "major","maj","x"
//	minor: "minor","min","y"
//	patch: "patch","pat","pth","hotfix","z"
//	rc:    "rc","pre","prerelease","pre-release","candidate"
//
// An empty string means nothing was selected and yields a *SelectionError.
func ParseBumpKind(s string) (BumpKind, error) {
	switch toTok(s) {
	case "major", "maj", "x":
		return BumpMajor, nil
	case "minor", "min", "y":
		return BumpMinor, nil
	case "patch", "pat", "pth", "hotfix", "z":
		return BumpPatch, nil
	case "rc", "pre", "prerelease", "pre-release", "candidate":
		return BumpPreRelease, nil
	case "":
		return 0, &SelectionError{}
	default:
		return 0, fmt.Errorf("%w: %q (valid options: %s)", ErrInvalidBumpKind, s, validKindsText)
	}
}

// Classify derives the bump kind a tag represents:
// pre-release if it carries a counter, otherwise major for X.0.0,
// minor for X.Y.0 and patch for everything else.
func Classify(t Tag) BumpKind {
	switch {
	case t.HasPre:
		return BumpPreRelease
	case t.Minor == 0 && t.Patch == 0:
		return BumpMajor
	case t.Patch == 0:
		return BumpMinor
	default:
		return BumpPatch
	}
}

// SelectBumpKind returns the single kind among selected.
// Repeating the same kind counts once. Zero or several distinct kinds
// yield a *SelectionError; a kind outside the enumeration yields
// ErrInvalidBumpKind.
func SelectBumpKind(selected ...BumpKind) (BumpKind, error) {
	set := NewKindSet()
	for _, k := range selected {
		if !k.Valid() {
			return 0, fmt.Errorf("%w: %s", ErrInvalidBumpKind, k)
		}

		set[k] = struct{}{}
	}

	if len(set) != 1 {
		return 0, &SelectionError{Selected: set.Slice()}
	}

	return set.Slice()[0], nil
}

// KindSet is a set of bump kinds, used to match "any of these kinds".
type KindSet map[BumpKind]struct{}

// NewKindSet returns a set holding kinds.
func NewKindSet(kinds ...BumpKind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}

	return s
}

// Has reports membership of k.
func (s KindSet) Has(k BumpKind) bool {
	_, ok := s[k]
	return ok
}

// Slice returns members in declaration order.
func (s KindSet) Slice() []BumpKind {
	out := make([]BumpKind, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// String returns members joined by commas, e.g. "major,minor".
// Every kind renders as "all", none as "none".
func (s KindSet) String() string {
	switch len(s) {
	case 0:
		return "none"
	case len(Kinds()):
		return "all"
	}

	parts := make([]string, 0, len(s))
	for _, k := range s.Slice() {
		parts = append(parts, k.String())
	}

	return strings.Join(parts, ",")
}

// ParseKindSet accepts combos of ParseBumpKind aliases:
//
//	single: "major", "rc"
//	combos: "major,minor", "major|minor|rc", "minor+patch", "major minor"
//	any:    "all", "any", "*"
//
// Unknown tokens are an error; an empty string yields an empty set.
func ParseKindSet(s string) (KindSet, error) {
	switch toTok(s) {
	case "":
		return NewKindSet(), nil
	case "all", "any", "*":
		return NewKindSet(Kinds()...), nil
	}

	set := NewKindSet()
	for _, tok := range splitKindTokens(s) {
		k, err := ParseBumpKind(tok)
		if err != nil {
			return nil, err
		}

		set[k] = struct{}{}
	}

	return set, nil
}

// adjacentKinds returns the kinds a tag of kind k is diffed against when
// looking for its previous release.
func adjacentKinds(k BumpKind) KindSet {
	switch k {
	case BumpMajor, BumpMinor:
		return NewKindSet(BumpMajor, BumpMinor)
	case BumpPatch:
		return NewKindSet(BumpMajor, BumpMinor, BumpPatch)
	case BumpPreRelease:
		return NewKindSet(BumpMajor, BumpMinor, BumpPreRelease)
	default:
		return NewKindSet()
	}
}
