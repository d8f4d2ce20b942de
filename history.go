package nstag

import "log/slog"

// History filters, aggregates, and sorts the tags of a namespace.
// Simple, readable pipeline:
//  1. kind gate (Kinds) and candidate gate (StableOnly)
//  2. range clip
//  3. dedup equal versions, first appearance wins ("1.2.0" vs "v1.2.0")
//  4. depth aggregation
//  5. sort, then limit
//
// The input set is never modified.
func History(set TagSet, opt Options, opts ...Option) []Tag {
	log := newConfig(opts).log()

	// 1) gates
	tags := make([]Tag, 0, len(set.Tags))
	for _, t := range set.Tags {
		if len(opt.Kinds) > 0 && !opt.Kinds.Has(Classify(t)) {
			continue
		}

		if opt.StableOnly && t.HasPre {
			continue
		}

		tags = append(tags, t)
	}

	// 2) range
	if opt.Range.Enabled() && len(tags) > 0 {
		tags = clipRange(tags, opt.Range)
	}

	// 3) dedup
	tags = deduplicate(tags)

	// 4) depth
	switch opt.Depth {
	case DepthMinor:
		tags = aggregate(tags, func(t Tag) [2]int { return [2]int{t.Major, t.Minor} })
	case DepthMajor:
		tags = aggregate(tags, func(t Tag) [2]int { return [2]int{t.Major, 0} })
	case DepthLatest:
		if best, ok := maxTag(tags, nil); ok {
			tags = []Tag{best}
		}
	default: // DepthPatch -> keep all
	}

	// 5) sort + limit
	out := capTags(SortTags(tags, opt.Sort), opt.Limit)

	log.Debug("history selected",
		slog.String("namespace", set.Namespace),
		slog.String("depth", opt.Depth.String()),
		slog.String("sort", opt.Sort.String()),
		slog.Int("in", len(set.Tags)),
		slog.Int("out", len(out)),
	)

	return out
}

// deduplicate keeps the first tag of every distinct version.
func deduplicate(in []Tag) []Tag {
	type key struct {
		maj, min, pat, pre int
		hasPre             bool
	}

	seen := make(map[key]struct{}, len(in))
	out := make([]Tag, 0, len(in))

	for _, t := range in {
		k := key{t.Major, t.Minor, t.Patch, t.Pre, t.HasPre}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, t)
	}

	return out
}

// aggregate keeps the greatest tag per group, groups ordered by first
// appearance.
func aggregate(in []Tag, group func(Tag) [2]int) []Tag {
	by := make(map[[2]int]Tag, len(in))
	order := make([][2]int, 0, 16)

	for _, t := range in {
		k := group(t)
		if best, ok := by[k]; ok {
			if Compare(t, best) > 0 {
				by[k] = t
			}

			continue
		}

		by[k] = t
		order = append(order, k)
	}

	out := make([]Tag, 0, len(by))
	for _, k := range order {
		out = append(out, by[k])
	}

	return out
}
