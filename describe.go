package nstag

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	refTagsPrefix  = "refs/tags/"
	refHeadsPrefix = "refs/heads/"
)

// Release describes an already created tag: what it was diffed against and
// which hotfixes it folds in.
type Release struct {
	Tag      Tag      `json:"tag" yaml:"tag"`
	ShortTag string   `json:"shortTag" yaml:"shortTag"`
	Kind     BumpKind `json:"kind" yaml:"kind"`

	Previous *Tag  `json:"previousTag" yaml:"previousTag"`
	Hotfixes []Tag `json:"hotfixes" yaml:"hotfixes"`

	// IsStableRelease is false for release candidates.
	IsStableRelease bool `json:"tagPrdSemver" yaml:"tagPrdSemver"`
}

// ParseRef extracts the tag from a pushed git ref
// "refs/tags/<namespace>/vMAJOR.MINOR.PATCH[-N]".
//
// Branch refs yield ErrBranchRef so callers can skip them; other refs
// yield ErrNotTagRef. A tag ref with a missing or invalid namespace or
// version yields ErrInvalidRef. Unlike Parse, the "v" prefix is mandatory.
func ParseRef(ref string) (Tag, error) {
	ref = strings.TrimSpace(ref)

	switch {
	case ref == "":
		return Tag{}, fmt.Errorf("%w: ref is required", ErrInvalidRef)
	case strings.HasPrefix(ref, refHeadsPrefix):
		return Tag{}, fmt.Errorf("%w: %s", ErrBranchRef, ref)
	case !strings.HasPrefix(ref, refTagsPrefix):
		return Tag{}, fmt.Errorf("%w: %s", ErrNotTagRef, ref)
	}

	name := strings.TrimPrefix(ref, refTagsPrefix)
	ns, version, _ := strings.Cut(name, "/")

	switch {
	case ns == "":
		return Tag{}, fmt.Errorf("%w: namespace is required in %s", ErrInvalidRef, ref)
	case !ValidNamespace(ns):
		return Tag{}, fmt.Errorf("%w: bad namespace %q", ErrInvalidRef, ns)
	case version == "":
		return Tag{}, fmt.Errorf("%w: version is required in %s", ErrInvalidRef, ref)
	case !refVersionRe.MatchString(version):
		return Tag{}, fmt.Errorf("%w: bad version %q", ErrInvalidRef, version)
	}

	t, err := Parse(name)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %w", ErrInvalidRef, err)
	}

	return t, nil
}

// Describe finds the previous release of tag within set.
//
// Only tags of kinds adjacent to tag's own kind are considered: majors and
// minors diff against majors and minors, patches additionally against
// patches, candidates against majors, minors and other candidates. The
// previous release is the next lower one in that list, nil when tag is the
// oldest or is absent from set. For a minor release, Hotfixes lists the
// patch releases of the previous minor line, ascending.
func Describe(set TagSet, tag Tag, opts ...Option) Release {
	log := newConfig(opts).log()

	kind := Classify(tag)
	rel := Release{
		Tag:             tag,
		ShortTag:        tag.Short(),
		Kind:            kind,
		Hotfixes:        []Tag{},
		IsStableRelease: tag.IsStable(),
	}

	adjacent := adjacentKinds(kind)
	candidates := make([]Tag, 0, len(set.Tags))
	for _, t := range set.Tags {
		if t.Namespace == tag.Namespace && adjacent.Has(Classify(t)) {
			candidates = append(candidates, t)
		}
	}

	candidates = dedupeSorted(SortTags(candidates, SortDesc))
	for i, t := range candidates {
		if Compare(t, tag) != 0 {
			continue
		}

		if i+1 < len(candidates) {
			prev := candidates[i+1]
			rel.Previous = &prev
		}

		break
	}

	if rel.Previous != nil && kind == BumpMinor {
		rel.Hotfixes = hotfixesOf(set.Tags, *rel.Previous)
	}

	log.Debug("described",
		slog.String("tag", Format(tag)),
		slog.String("kind", kind.String()),
		slog.String("previous", nameOrEmpty(rel.Previous)),
		slog.Int("hotfixes", len(rel.Hotfixes)),
	)

	return rel
}

// hotfixesOf lists the patch releases on base's major.minor line, ascending.
func hotfixesOf(tags []Tag, base Tag) []Tag {
	out := []Tag{}
	for _, t := range tags {
		if Classify(t) == BumpPatch && t.Major == base.Major && t.Minor == base.Minor {
			out = append(out, t)
		}
	}

	return dedupeSorted(SortTags(out, SortAsc))
}

func nameOrEmpty(t *Tag) string {
	if t == nil {
		return ""
	}

	return Format(*t)
}
