package nstag

// Select builds the tag set of namespace from raw and runs History over it,
// returning canonical tag names.
// It is equivalent to formatting History(Build(raw, namespace), opt).
func Select(raw []string, namespace string, opt Options, opts ...Option) []string {
	tags := History(Build(raw, namespace, opts...), opt, opts...)

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, Format(t))
	}

	return out
}

// Releases runs History with DefaultOptions.
//
// It keeps only stable releases, every patch included, sorted newest first,
// and deduplicates equivalent tags (e.g. "api/1.2.0" vs "api/v1.2.0").
func Releases(set TagSet) []Tag {
	return History(set, DefaultOptions())
}

// Latest returns the latest stable release, false when there is none.
func Latest(set TagSet) (Tag, bool) {
	opt := DefaultOptions()
	opt.Depth = DepthLatest

	out := History(set, opt)
	if len(out) == 0 {
		return Tag{}, false
	}

	return out[0], true
}

// LatestPerMinor returns the latest stable release of each major.minor line.
// DepthMinor + SortDesc.
func LatestPerMinor(set TagSet) []Tag {
	opt := DefaultOptions()
	opt.Depth = DepthMinor

	return History(set, opt)
}

// LatestPerMajor returns the latest stable release for each major series.
// DepthMajor + SortDesc.
func LatestPerMajor(set TagSet) []Tag {
	opt := DefaultOptions()
	opt.Depth = DepthMajor

	return History(set, opt)
}

// Candidates returns the release candidates not yet superseded by the
// stable release of their own version, newest first.
func Candidates(set TagSet) []Tag {
	stable := make(map[[3]int]struct{}, len(set.Tags))
	for _, t := range set.Tags {
		if t.IsStable() {
			stable[[3]int{t.Major, t.Minor, t.Patch}] = struct{}{}
		}
	}

	out := make([]Tag, 0, len(set.Tags))
	for _, t := range History(set, Options{Kinds: NewKindSet(BumpPreRelease), Sort: SortDesc}) {
		if _, ok := stable[[3]int{t.Major, t.Minor, t.Patch}]; !ok {
			out = append(out, t)
		}
	}

	return out
}
