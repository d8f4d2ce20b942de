package nstag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed reports a tag that does not match "<namespace>/vX.Y.Z[-N]".
	ErrMalformed = errors.New("malformed tag")

	// ErrInvalidBumpKind reports a bump kind outside major, minor, patch, rc.
	ErrInvalidBumpKind = errors.New("invalid bump kind")

	// ErrBumpKindSelection reports that zero or several bump kinds were selected.
	ErrBumpKindSelection = errors.New("exactly one bump kind must be selected")

	// ErrBranchRef reports a branch ref where a tag ref was expected.
	ErrBranchRef = errors.New("ref is a branch, not a tag")

	// ErrNotTagRef reports a ref outside refs/tags/.
	ErrNotTagRef = errors.New("ref must be a tag")

	// ErrInvalidRef reports a tag ref without namespace or with a bad version.
	ErrInvalidRef = errors.New("invalid tag ref")

	// ErrVersionOverflow reports a bump of a component already at math.MaxInt.
	ErrVersionOverflow = errors.New("version component overflow")

	// ErrInvalidDepth reports an unknown History depth name.
	ErrInvalidDepth = errors.New("invalid depth")

	// ErrInvalidSort reports an unknown History sort name.
	ErrInvalidSort = errors.New("invalid sort")

	// ErrInvalidRange reports a History range bound that is not a version.
	ErrInvalidRange = errors.New("invalid range bound")
)

// ParseError is returned by Parse for input that is not a namespaced tag.
type ParseError struct {
	Raw string
	Err error // optional numeric conversion failure
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrMalformed, e.Raw, e.Err)
	}

	return fmt.Sprintf("%s %q", ErrMalformed, e.Raw)
}

// Is makes errors.Is(err, ErrMalformed) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SelectionError lists bump kinds selected when exactly one was required.
// An empty Selected means nothing was selected.
type SelectionError struct {
	Selected []BumpKind
}

func (e *SelectionError) Error() string {
	if len(e.Selected) == 0 {
		return fmt.Sprintf("%s: none selected (valid options: %s)", ErrBumpKindSelection, validKindsText)
	}

	names := make([]string, 0, len(e.Selected))
	for _, k := range e.Selected {
		names = append(names, k.String())
	}

	return fmt.Sprintf("%s: got %s", ErrBumpKindSelection, strings.Join(names, ", "))
}

func (e *SelectionError) Unwrap() error {
	return ErrBumpKindSelection
}
