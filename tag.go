package nstag

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is a parsed "<namespace>/v<major>.<minor>.<patch>[-<pre>]" release tag.
//
// Pre is meaningful only when HasPre is set. Values built with NewTag,
// WithPre or Parse keep Pre at zero for stable releases, so two tags can be
// compared with ==.
type Tag struct {
	Namespace string
	Major     int
	Minor     int
	Patch     int
	Pre       int
	HasPre    bool
}

// NewTag returns a stable release tag.
func NewTag(namespace string, major, minor, patch int) Tag {
	return Tag{
		Namespace: namespace,
		Major:     major,
		Minor:     minor,
		Patch:     patch,
	}
}

// WithPre returns a copy of t carrying pre-release counter n.
// It panics if n is negative.
func (t Tag) WithPre(n int) Tag {
	if n < 0 {
		panic(fmt.Sprintf("nstag: negative pre-release counter %d", n))
	}

	t.Pre = n
	t.HasPre = true

	return t
}

// Stable returns a copy of t without the pre-release counter.
func (t Tag) Stable() Tag {
	t.Pre = 0
	t.HasPre = false

	return t
}

// IsStable reports whether t is a stable release (no pre-release counter).
func (t Tag) IsStable() bool {
	return !t.HasPre
}

// Kind is shorthand for Classify(t).
func (t Tag) Kind() BumpKind {
	return Classify(t)
}

// sameTriple reports whether a and b share major.minor.patch.
func sameTriple(a, b Tag) bool {
	return a.Major == b.Major && a.Minor == b.Minor && a.Patch == b.Patch
}

// Version renders "MAJOR.MINOR.PATCH[-PRE]" without namespace and prefix.
func (t Tag) Version() string {
	var b strings.Builder
	b.Grow(16)

	b.WriteString(strconv.Itoa(t.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(t.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(t.Patch))

	if t.HasPre {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(t.Pre))
	}

	return b.String()
}

// Short renders "vMAJOR.MINOR.PATCH[-PRE]", the tag name without namespace.
func (t Tag) Short() string {
	return "v" + t.Version()
}

// String returns the canonical tag name, see Format.
func (t Tag) String() string {
	return Format(t)
}

// MarshalText encodes the tag as its canonical name.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(Format(t)), nil
}

// UnmarshalText decodes a tag name accepted by Parse.
func (t *Tag) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}

	*t = v

	return nil
}
