package nstag

import (
	"cmp"
	"sort"
)

// Compare orders tags by major, minor, patch and then pre-release counter.
// A stable release sorts after every pre-release of the same
// MAJOR.MINOR.PATCH; two stable tags of the same version are equal.
// Namespace is ignored. Returns -1, 0 or +1.
func Compare(a, b Tag) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}

	switch {
	case !a.HasPre && !b.HasPre:
		return 0
	case !a.HasPre:
		return 1
	case !b.HasPre:
		return -1
	default:
		return cmp.Compare(a.Pre, b.Pre)
	}
}

// SortTags returns a copy of in ordered by Compare.
// Equal versions keep their input order; SortNone returns the copy unsorted.
// The result is never nil.
func SortTags(in []Tag, mode SortMode) []Tag {
	out := make([]Tag, len(in))
	copy(out, in)

	if len(out) < 2 || mode == SortNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(out[i], out[j])
		if mode == SortAsc {
			return c < 0
		}

		return c > 0 // SortDesc
	})

	return out
}

// maxTag returns the greatest tag accepted by keep, first wins on ties.
func maxTag(in []Tag, keep func(Tag) bool) (Tag, bool) {
	var (
		best  Tag
		found bool
	)

	for _, t := range in {
		if keep != nil && !keep(t) {
			continue
		}

		if !found || Compare(t, best) > 0 {
			best = t
			found = true
		}
	}

	return best, found
}
