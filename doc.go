/*
Package nstag (namespaced semver tags) resolves release tags of monorepo
components.

Every component releases under its own namespace, and its tags look like
"<namespace>/vMAJOR.MINOR.PATCH[-N]", where "-N" marks release candidate N.
The package is I/O-agnostic: it operates purely on a slice of tag strings.
Typical flow:

 1. Fetch raw tags elsewhere (e.g., `git tag --list 'api/*'`).
 2. Call Build to keep the tags of one namespace.
 3. Call Resolve for the next tag, Describe for a pushed tag, or History
    for a filtered listing.

Versioning notes:
  - The "v" prefix is optional on input and always present on output.
  - Unparsable tags and tags of other namespaces are skipped, never reported.
  - A stable X.Y.Z sorts after every X.Y.Z-N candidate.
  - An empty namespace starts at the implicit root 0.0.0.

Bump kinds:
  - BumpMajor: X.0.0; BumpMinor: X.Y.0; BumpPatch: X.Y.Z.
  - BumpPreRelease: X.Y.Z-N; a candidate bump never moves X.Y.Z.

Usage example:

	raw := []string{
		"api/v1.0.0", "api/v1.1.0", "api/v1.1.1", "api/v1.1.2",
		"api/v1.2.0", "web/v3.0.0", "legacy-2019",
	}

	set := nstag.Build(raw, "api")

	res, err := nstag.Resolve(set, nstag.BumpMinor)
	if err != nil {
		return err
	}

	fmt.Println(res.Tag)      // api/v1.3.0
	fmt.Println(res.Previous) // api/v1.1.2
	fmt.Println(res.Hotfixes) // [api/v1.1.1 api/v1.1.2]
*/
package nstag
