package nstag

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures diagnostics of Build, Resolve, Describe and History.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets a structured logger for diagnostics (skipped tags,
// resolution decisions). If not set, the package stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}

	return c
}

// log returns the configured logger, or one that discards everything.
func (c config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}

	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Options configures History: filtering, aggregation and ordering of a
// namespace's tags.
type Options struct {
	// Kinds keeps only tags whose Classify result is in the set.
	// Empty keeps every kind.
	Kinds KindSet

	// StableOnly drops release candidates.
	StableOnly bool

	// Range clipping. Applied before deduplication and aggregation.
	Range Range

	// Depth controls aggregation (patch/minor/major/latest).
	Depth Depth

	// Sort defines final output ordering (none/asc/desc).
	Sort SortMode

	// Limit caps the output length; <= 0 means unlimited.
	Limit int
}

// DefaultOptions returns a practical preset for release listings:
//
//   - StableOnly: true        // no release candidates
//   - Depth:      DepthPatch  // every release
//   - Sort:       SortDesc    // newest first
func DefaultOptions() Options {
	return Options{
		StableOnly: true,
		Depth:      DepthPatch,
		Sort:       SortDesc,
	}
}

// Depth controls aggregation granularity.
type Depth int

const (
	// DepthPatch keeps all distinct versions (no aggregation).
	DepthPatch Depth = iota
	// DepthMinor keeps the latest per (major, minor).
	DepthMinor
	// DepthMajor keeps the latest per major.
	DepthMajor
	// DepthLatest keeps a single latest tag overall.
	DepthLatest
)

// String returns a stable textual representation for Depth.
func (d Depth) String() string {
	switch d {
	case DepthLatest:
		return "latest"
	case DepthMajor:
		return "major"
	case DepthMinor:
		return "minor"
	default:
		return "patch"
	}
}

// ParseDepth maps a depth name to Depth, ignoring case and surrounding
// space. An empty string and "all" mean DepthPatch.
func ParseDepth(s string) (Depth, error) {
	switch toTok(s) {
	case "", "patch", "all":
		return DepthPatch, nil
	case "minor":
		return DepthMinor, nil
	case "major":
		return DepthMajor, nil
	case "latest":
		return DepthLatest, nil
	default:
		return DepthPatch, fmt.Errorf("%w %q (valid: patch, minor, major, latest)", ErrInvalidDepth, s)
	}
}

// UnmarshalFlag implements the go-flags Unmarshaler interface.
func (d *Depth) UnmarshalFlag(value string) error {
	v, err := ParseDepth(value)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// SortMode controls output ordering.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts oldest first.
	SortAsc
	// SortDesc sorts newest first.
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps a sort name to SortMode. Both "asc" and "ascending" are
// accepted, likewise for descending; an empty string means SortNone.
func ParseSort(s string) (SortMode, error) {
	switch toTok(s) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return SortNone, fmt.Errorf("%w %q (valid: none, asc, desc)", ErrInvalidSort, s)
	}
}

// UnmarshalFlag implements the go-flags Unmarshaler interface.
func (m *SortMode) UnmarshalFlag(value string) error {
	v, err := ParseSort(value)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// Range clips versions to [Min, Max] with optional exclusive ends.
// Min/Max accept X, X.Y, X.Y.Z (with optional 'v') or X.Y.Z-N.
type Range struct {
	Min string // empty => no lower bound
	Max string // empty => no upper bound

	// When true => exclusive bound. Default false => inclusive.
	MinExclusive bool
	MaxExclusive bool

	// When Min is shorthand (X or X.Y), include release candidates at the
	// floor. E.g. Min="1.2" + IncludePreRelease=true => floor is "1.2.0-0".
	IncludePreRelease bool
}

// Enabled reports whether any bound is set.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}
