package nstag

import (
	"fmt"
	"log/slog"
	"math"
)

// Result is the outcome of Resolve for one namespace and bump kind.
type Result struct {
	// Tag is the canonical name of Next, ready to be created.
	Tag string `json:"tag" yaml:"tag"`
	// Version is Next without namespace and "v" prefix.
	Version string   `json:"version" yaml:"version"`
	Kind    BumpKind `json:"kind" yaml:"kind"`

	Current  Tag   `json:"current" yaml:"current"`
	Previous *Tag  `json:"previous" yaml:"previous"`
	Next     Tag   `json:"next" yaml:"next"`
	Hotfixes []Tag `json:"hotfixes" yaml:"hotfixes"`

	// IsStableRelease is false when Next is a release candidate.
	IsStableRelease bool `json:"stable" yaml:"stable"`
}

// Resolve computes the current, previous and next versions of set for a
// release of the given kind.
//
// Current is the greatest tag of the set, or the implicit root 0.0.0 when
// the set is empty. Previous is nil when no tag qualifies for kind. Hotfixes
// is only populated for minor releases and is never nil.
func Resolve(set TagSet, kind BumpKind, opts ...Option) (Result, error) {
	if !kind.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidBumpKind, kind)
	}

	log := newConfig(opts).log()

	current, ok := maxTag(set.Tags, nil)
	if !ok {
		current = NewTag(set.Namespace, 0, 0, 0)
	}

	if err := checkBump(current, kind); err != nil {
		return Result{}, err
	}

	next := nextVersion(current, kind)
	res := Result{
		Tag:             Format(next),
		Version:         next.Version(),
		Kind:            kind,
		Current:         current,
		Next:            next,
		Hotfixes:        []Tag{},
		IsStableRelease: next.IsStable(),
	}

	if prev, ok := previousVersion(set.Tags, current, kind); ok {
		res.Previous = &prev
	}

	if kind == BumpMinor {
		res.Hotfixes = hotfixesBeforeMinor(set.Tags, current)
	}

	log.Debug("resolved",
		slog.String("namespace", set.Namespace),
		slog.String("kind", kind.String()),
		slog.String("current", current.Version()),
		slog.String("next", next.Version()),
		slog.Bool("has_previous", res.Previous != nil),
		slog.Int("hotfixes", len(res.Hotfixes)),
	)

	return res, nil
}

// checkBump reports ErrVersionOverflow when the component kind increments
// is already at math.MaxInt.
func checkBump(current Tag, kind BumpKind) error {
	var field string

	switch {
	case kind == BumpMajor && current.Major == math.MaxInt:
		field = "major"
	case kind == BumpMinor && current.Minor == math.MaxInt:
		field = "minor"
	case kind == BumpPatch && current.Patch == math.MaxInt:
		field = "patch"
	case kind == BumpPreRelease && current.HasPre && current.Pre == math.MaxInt:
		field = "pre-release"
	default:
		return nil
	}

	return fmt.Errorf("%w: %s %s of %s", ErrVersionOverflow, kind, field, Format(current))
}

// nextVersion bumps current by kind. A pre-release bump keeps
// MAJOR.MINOR.PATCH and starts or advances the candidate counter.
func nextVersion(current Tag, kind BumpKind) Tag {
	ns := current.Namespace

	switch kind {
	case BumpMajor:
		return NewTag(ns, current.Major+1, 0, 0)
	case BumpMinor:
		return NewTag(ns, current.Major, current.Minor+1, 0)
	case BumpPatch:
		return NewTag(ns, current.Major, current.Minor, current.Patch+1)
	default: // BumpPreRelease
		if current.HasPre {
			return current.WithPre(current.Pre + 1)
		}

		return current.WithPre(0)
	}
}

// previousVersion finds the tag a release of kind is diffed against.
func previousVersion(tags []Tag, current Tag, kind BumpKind) (Tag, bool) {
	switch kind {
	case BumpMajor:
		return maxTag(tags, func(t Tag) bool {
			return t.Major < current.Major
		})

	case BumpMinor:
		return maxTag(tags, func(t Tag) bool {
			return t.Major == current.Major && t.Minor < current.Minor
		})

	case BumpPatch:
		return maxTag(tags, func(t Tag) bool {
			return t.Major == current.Major && t.Minor == current.Minor && t.Patch < current.Patch
		})

	default: // BumpPreRelease
		if current.HasPre {
			// previous candidate of the same line, else the prior release line
			if t, ok := maxTag(tags, func(t Tag) bool {
				return sameTriple(t, current) && t.HasPre && t.Pre < current.Pre
			}); ok {
				return t, true
			}

			return maxTag(tags, func(t Tag) bool {
				return Compare(t.Stable(), current.Stable()) < 0
			})
		}

		// stable base: second most recent stable release
		return maxTag(tags, func(t Tag) bool {
			return t.IsStable() && Compare(t, current) < 0
		})
	}
}

// hotfixesBeforeMinor lists the stable patch releases shipped on the minor
// line right before current's, ascending. Empty when that line has no X.Y.0
// base release.
func hotfixesBeforeMinor(tags []Tag, current Tag) []Tag {
	out := []Tag{}
	if current.Minor == 0 {
		return out
	}

	prevMinor := current.Minor - 1
	if _, ok := maxTag(tags, func(t Tag) bool {
		return t.IsStable() && t.Major == current.Major && t.Minor == prevMinor && t.Patch == 0
	}); !ok {
		return out
	}

	for _, t := range tags {
		if t.IsStable() && t.Major == current.Major && t.Minor == prevMinor && t.Patch > 0 {
			out = append(out, t)
		}
	}

	return dedupeSorted(SortTags(out, SortAsc))
}

// dedupeSorted drops consecutive equal versions, first wins.
func dedupeSorted(in []Tag) []Tag {
	out := in[:0]
	for i, t := range in {
		if i > 0 && Compare(t, out[len(out)-1]) == 0 {
			continue
		}

		out = append(out, t)
	}

	return out
}
