package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/woozymasta/nstag"
)

type nextCommand struct {
	// betteralign:ignore

	Namespace      string `short:"n" long:"namespace" description:"Namespace to release" required:"true"`
	Major          bool   `long:"major"               description:"Release X+1.0.0"`
	Minor          bool   `long:"minor"               description:"Release X.Y+1.0"`
	Patch          bool   `long:"patch"               description:"Release X.Y.Z+1"`
	RC             bool   `long:"rc"                  description:"Start or advance a release candidate X.Y.Z-N"`
	Bump           string `short:"b" long:"bump"      description:"Bump kind by name (major, minor, patch, rc)"`
	CheckNamespace bool   `long:"check-namespace"     description:"Fail unless the namespace has a directory under the namespace root"`

	app *app
}

// Execute implements flags.Commander.
func (c *nextCommand) Execute(_ []string) error {
	kind, err := c.kind()
	if err != nil {
		return err
	}

	ns, err := namespaceArg(c.Namespace)
	if err != nil {
		return err
	}

	if err := c.app.setup(); err != nil {
		return err
	}

	if c.CheckNamespace {
		if err := c.app.layout().Check(ns); err != nil {
			return err
		}
	}

	set, err := c.app.namespaceSet(ns)
	if err != nil {
		return err
	}

	res, err := nstag.Resolve(set, kind, nstag.WithLogger(c.app.log))
	if err != nil {
		return err
	}

	c.app.log.Info("next tag",
		slog.String("namespace", ns),
		slog.String("kind", kind.String()),
		slog.String("current", res.Current.Version()),
		slog.String("tag", res.Tag),
	)

	return c.app.write(res)
}

// kind folds the bump flags into exactly one BumpKind.
func (c *nextCommand) kind() (nstag.BumpKind, error) {
	var selected []nstag.BumpKind

	for _, f := range []struct {
		set  bool
		kind nstag.BumpKind
	}{
		{c.Major, nstag.BumpMajor},
		{c.Minor, nstag.BumpMinor},
		{c.Patch, nstag.BumpPatch},
		{c.RC, nstag.BumpPreRelease},
	} {
		if f.set {
			selected = append(selected, f.kind)
		}
	}

	if strings.TrimSpace(c.Bump) != "" {
		k, err := nstag.ParseBumpKind(c.Bump)
		if err != nil {
			return 0, err
		}

		selected = append(selected, k)
	}

	return nstag.SelectBumpKind(selected...)
}

type describeCommand struct {
	// betteralign:ignore

	Ref            string `short:"r" long:"ref" env:"GITHUB_REF" description:"Pushed ref, refs/tags/<namespace>/vX.Y.Z[-N]"`
	CheckNamespace bool   `long:"check-namespace"                description:"Fail unless the namespace has a directory under the namespace root"`

	app *app
}

// Execute implements flags.Commander.
func (c *describeCommand) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	tag, err := nstag.ParseRef(c.Ref)
	if errors.Is(err, nstag.ErrBranchRef) {
		c.app.log.Info("branch ref, nothing to describe", slog.String("ref", c.Ref))
		return nil
	}

	if err != nil {
		return err
	}

	if c.CheckNamespace {
		if err := c.app.layout().Check(tag.Namespace); err != nil {
			return err
		}
	}

	set, err := c.app.namespaceSet(tag.Namespace)
	if err != nil {
		return err
	}

	if !set.Contains(tag) {
		c.app.log.Warn("tag not found in tag list", slog.String("tag", nstag.Format(tag)))
	}

	rel := nstag.Describe(set, tag, nstag.WithLogger(c.app.log))

	c.app.log.Info("described tag",
		slog.String("tag", nstag.Format(tag)),
		slog.String("kind", rel.Kind.String()),
		slog.Int("hotfixes", len(rel.Hotfixes)),
	)

	return c.app.write(rel)
}

type listCommand struct {
	// betteralign:ignore

	Namespace  string         `short:"n" long:"namespace" description:"Namespace to list" required:"true"`
	Depth      nstag.Depth    `short:"D" long:"depth"     description:"Aggregation depth (patch, minor, major, latest)" default:"patch"`
	Sort       nstag.SortMode `short:"S" long:"sort"      description:"Sort output tags (none, asc, desc)" default:"desc"`
	Kinds      string         `short:"k" long:"kinds"     description:"Keep only these kinds, comma separated (major, minor, patch, rc, all)"`
	Stable     bool           `short:"s" long:"stable"    description:"Drop release candidates"`
	Candidates bool           `long:"candidates"          description:"List only release candidates without a stable release, newest first"`
	Limit      int            `short:"l" long:"limit"     description:"Max number of output tags (<=0 = unlimited)" default:"0"`

	Range rangeOptions `group:"Range"`

	app *app
}

type rangeOptions struct {
	Min             string `short:"m" long:"min"                description:"Lower bound (X / X.Y / X.Y.Z[-N])"`
	Max             string `short:"x" long:"max"                description:"Upper bound (X / X.Y / X.Y.Z[-N])"`
	MinExclusive    bool   `short:"M" long:"min-exclusive"      description:"Exclude lower bound itself"`
	MaxExclusive    bool   `short:"X" long:"max-exclusive"      description:"Exclude upper bound itself"`
	IncludePreAtMin bool   `short:"p" long:"include-prerelease" description:"When min is shorthand, include release candidates at the floor (>= X.Y.0-0)"`
}

// Execute implements flags.Commander.
func (c *listCommand) Execute(_ []string) error {
	ns, err := namespaceArg(c.Namespace)
	if err != nil {
		return err
	}

	opt, err := c.options()
	if err != nil {
		return err
	}

	if err := c.app.setup(); err != nil {
		return err
	}

	set, err := c.app.namespaceSet(ns)
	if err != nil {
		return err
	}

	var out []nstag.Tag
	if c.Candidates {
		out = nstag.Candidates(set)
		if opt.Limit > 0 && len(out) > opt.Limit {
			out = out[:opt.Limit]
		}
	} else {
		out = nstag.History(set, opt, nstag.WithLogger(c.app.log))
	}

	c.app.log.Debug("listed tags", slog.String("namespace", ns), slog.Int("count", len(out)))

	return c.app.write(out)
}

func (c *listCommand) options() (nstag.Options, error) {
	if c.Candidates && c.Stable {
		return nstag.Options{}, fmt.Errorf("%w: --candidates and --stable exclude each other", errUsage)
	}

	kinds, err := nstag.ParseKindSet(c.Kinds)
	if err != nil {
		return nstag.Options{}, err
	}

	opt := nstag.Options{
		Kinds:      kinds,
		StableOnly: c.Stable,
		Depth:      c.Depth,
		Sort:       c.Sort,
		Limit:      c.Limit,
		Range: nstag.Range{
			Min:               strings.TrimSpace(c.Range.Min),
			Max:               strings.TrimSpace(c.Range.Max),
			MinExclusive:      c.Range.MinExclusive,
			MaxExclusive:      c.Range.MaxExclusive,
			IncludePreRelease: c.Range.IncludePreAtMin,
		},
	}

	if err := opt.Range.Validate(); err != nil {
		return nstag.Options{}, err
	}

	return opt, nil
}

type namespacesCommand struct {
	Dirs bool `long:"dirs" description:"List component directories under the namespace root instead of tagged namespaces"`

	app *app
}

// Execute implements flags.Commander.
func (c *namespacesCommand) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	var (
		out []string
		err error
	)

	if c.Dirs {
		out, err = c.app.layout().Namespaces()
	} else {
		var raw []string
		if raw, err = c.app.tags(""); err == nil {
			out = nstag.Namespaces(raw)
		}
	}

	if err != nil {
		return err
	}

	if out == nil {
		out = []string{}
	}

	return c.app.write(out)
}
