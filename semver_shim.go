package nstag

import (
	"strconv"

	sv "github.com/woozymasta/semver"
)

// Semver returns t as a SemVer value ("MAJOR.MINOR.PATCH[-PRE]", namespace
// dropped), for interop with github.com/woozymasta/semver tooling.
func (t Tag) Semver() sv.Semver {
	pre := ""
	if t.HasPre {
		pre = strconv.Itoa(t.Pre)
	}

	return makeSemver(t.Major, t.Minor, t.Patch, pre)
}

// makeSemver is a light Semver constructor without parsing.
// prerelease is given without the leading '-' (e.g. "0" or "3.0").
func makeSemver(maj, minor, pat int, prerelease string) sv.Semver {
	flags := sv.FlagHasMajor | sv.FlagHasMinor | sv.FlagHasPatch
	if prerelease != "" {
		flags |= sv.FlagHasPre
	}

	return sv.Semver{
		Major:      maj,
		Minor:      minor,
		Patch:      pat,
		Prerelease: prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
