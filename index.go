package nstag

import (
	"log/slog"
	"sort"
	"strings"
)

// TagSet is the parsed tag history of one namespace, in input order.
type TagSet struct {
	Namespace string
	Tags      []Tag
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s.Tags)
}

// Contains reports whether the set holds a tag equal to t (same version).
func (s TagSet) Contains(t Tag) bool {
	for _, x := range s.Tags {
		if Compare(x, t) == 0 {
			return true
		}
	}

	return false
}

// Build collects the tags of namespace from raw tag names.
//
// Entries that do not parse, or that belong to another namespace
// (case-sensitive match), are dropped without error: tag lists routinely
// carry unrelated or legacy tags. Surrounding whitespace is trimmed and blank
// entries are skipped. The result is not sorted.
func Build(raw []string, namespace string, opts ...Option) TagSet {
	log := newConfig(opts).log()

	set := TagSet{Namespace: namespace}
	skipped := 0

	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		t, err := Parse(s)
		if err != nil {
			log.Debug("skip tag", slog.String("tag", s), slog.Any("error", err))
			skipped++
			continue
		}

		if t.Namespace != namespace {
			continue
		}

		set.Tags = append(set.Tags, t)
	}

	log.Debug("namespace tags collected",
		slog.String("namespace", namespace),
		slog.Int("tags", len(set.Tags)),
		slog.Int("skipped", skipped),
	)

	return set
}

// Namespaces returns the sorted distinct namespaces of every parsable tag in raw.
func Namespaces(raw []string) []string {
	seen := make(map[string]struct{})
	for _, s := range raw {
		t, err := Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}

		seen[t.Namespace] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}

	sort.Strings(out)

	return out
}
