package nstag

import "regexp"

var (
	// Namespaced tag: "<namespace>/vX.Y.Z[-N]", leading "v" optional for
	// tags created before the prefix convention existed.
	tagRe = regexp.MustCompile(`^([A-Za-z0-9_-]+)/v?(\d+)\.(\d+)\.(\d+)(-(\d+))?$`)

	// Version part of a pushed tag ref, "v" mandatory.
	refVersionRe = regexp.MustCompile(`^v\d+\.\d+\.\d+(-\d+)?$`)

	// Namespace identifier alone.
	namespaceRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)
