package nstag

import (
	"fmt"

	"github.com/woozymasta/semver"
)

// Validate reports bounds that do not parse as X, X.Y, X.Y.Z or full SemVer.
func (r Range) Validate() error {
	for _, b := range []string{r.Min, r.Max} {
		if b == "" {
			continue
		}

		if v, ok := semver.Parse(b); !ok || !v.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidRange, b)
		}
	}

	return nil
}

// clipRange keeps tags within r. Bounds that fail to parse are ignored;
// call Range.Validate first to reject them. Parsed bounds are rebuilt with
// makeSemver so the original spelling and build metadata never take part in
// comparisons.
func clipRange(in []Tag, r Range) []Tag {
	var (
		haveMin, haveMax bool
		minFloor         semver.Semver
		maxCeil          semver.Semver // strict exclusive ceiling
	)

	if r.Min != "" {
		minFloor, haveMin = compileMin(r.Min, r.IncludePreRelease)
	}

	if r.Max != "" {
		maxCeil, haveMax = compileMaxExclusive(r.Max, r.MaxExclusive)
	}

	keep := make([]Tag, 0, len(in))
	for _, t := range in {
		v := t.Semver()

		if haveMin {
			c := v.Compare(minFloor)
			if c < 0 || (c == 0 && r.MinExclusive) {
				continue
			}
		}

		if haveMax && v.Compare(maxCeil) >= 0 {
			continue
		}

		keep = append(keep, t)
	}

	return keep
}

// compileMin parses the lower bound once. Shorthands X / X.Y floor to
// X.0.0 / X.Y.0, or to X.Y.0-0 when candidates are included at the floor.
func compileMin(raw string, includePreAtFloor bool) (semver.Semver, bool) {
	v, ok := semver.Parse(raw)
	if !ok || !v.IsValid() {
		return semver.Semver{}, false
	}

	if v.HasPatch() {
		return makeSemver(v.Major, v.Minor, v.Patch, v.Prerelease), true
	}

	maj, minor := v.Major, 0
	if v.HasMinor() {
		minor = v.Minor
	}

	if includePreAtFloor {
		return makeSemver(maj, minor, 0, "0"), true
	}

	return makeSemver(maj, minor, 0, ""), true
}

// compileMaxExclusive turns the upper bound into a strict ceiling.
//
//	shorthand X:   excl -> < X.0.0-0;  incl -> < (X+1).0.0-0
//	shorthand X.Y: excl -> < X.Y.0-0;  incl -> < X.(Y+1).0-0
//	full:          excl -> < v
//	               incl -> pre: < v.pre.0; release: < X.Y.(Z+1)-0
func compileMaxExclusive(raw string, maxExclusive bool) (semver.Semver, bool) {
	v, ok := semver.Parse(raw)
	if !ok || !v.IsValid() {
		return semver.Semver{}, false
	}

	if !v.HasPatch() {
		maj, minor := v.Major, 0
		if v.HasMinor() {
			minor = v.Minor
		}

		if maxExclusive {
			return makeSemver(maj, minor, 0, "0"), true
		}

		if !v.HasMinor() {
			return makeSemver(maj+1, 0, 0, "0"), true
		}

		return makeSemver(maj, minor+1, 0, "0"), true
	}

	if maxExclusive {
		return makeSemver(v.Major, v.Minor, v.Patch, v.Prerelease), true
	}

	if v.HasPre() {
		return makeSemver(v.Major, v.Minor, v.Patch, v.Prerelease+".0"), true
	}

	return makeSemver(v.Major, v.Minor, v.Patch+1, "0"), true
}
