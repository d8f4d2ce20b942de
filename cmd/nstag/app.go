package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/woozymasta/nstag"
	"github.com/woozymasta/nstag/internal/config"
	"github.com/woozymasta/nstag/internal/logging"
	"github.com/woozymasta/nstag/internal/monorepo"
	"github.com/woozymasta/nstag/internal/output"
	"github.com/woozymasta/nstag/internal/source"
)

type globalOptions struct {
	// betteralign:ignore

	Config        string `short:"c" long:"config"         description:"Config file (default: <repo>/.nstag.yaml)"`
	Repo          string `short:"C" long:"repo"           description:"Repository work tree"`
	Source        string `long:"source"                   description:"Tag source" choice:"git" choice:"stdin" choice:"file"`
	File          string `short:"f" long:"file"           description:"Tag list file, implies --source file"`
	NamespaceRoot string `long:"namespace-root"           description:"Directory holding one subdirectory per namespace"`
	Output        string `short:"o" long:"output"         description:"Output format" choice:"text" choice:"json" choice:"yaml"`
	LogLevel      string `long:"log-level" env:"NSTAG_LOG_LEVEL"   description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFormat     string `long:"log-format" env:"NSTAG_LOG_FORMAT" description:"Log format" choice:"text" choice:"json" default:"text"`
}

// app carries state shared by every command. Exported fields are parsed by
// go-flags; the rest is filled by setup.
type app struct {
	Global globalOptions `group:"Global options"`

	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// src overrides the configured tag source when set.
	src source.Source

	cfg    config.Config
	log    *slog.Logger
	format output.Format
}

func newApp(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		ctx:    ctx,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// setup loads the config file, applies flags over it and builds the logger.
func (a *app) setup() error {
	g := a.Global

	path, explicit := g.Config, g.Config != ""
	if !explicit {
		path = config.Discover(g.Repo)
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}

	flagCfg := config.Config{
		NamespaceRoot: g.NamespaceRoot,
		Source:        g.Source,
		File:          g.File,
		Repo:          g.Repo,
		Output:        g.Output,
		LogLevel:      g.LogLevel,
	}
	if g.File != "" && g.Source == "" {
		flagCfg.Source = config.SourceFile
	}

	cfg = cfg.Merge(flagCfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	log, err := logging.New(a.stderr, cfg.LogLevel, g.LogFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	a.cfg, a.log, a.format = cfg, log, format

	log.Debug("configured",
		slog.String("config", path),
		slog.String("source", cfg.Source),
		slog.String("repo", cfg.Repo),
		slog.String("output", cfg.Output),
	)

	return nil
}

func (a *app) tagSource() source.Source {
	if a.src != nil {
		return a.src
	}

	switch a.cfg.Source {
	case config.SourceStdin:
		return source.Reader{R: a.stdin}
	case config.SourceFile:
		return source.File{Path: a.cfg.File}
	default:
		return source.Git{Dir: a.cfg.Repo, Logger: a.log}
	}
}

// tags fetches raw tag names matching pattern.
func (a *app) tags(pattern string) ([]string, error) {
	raw, err := a.tagSource().Tags(a.ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	a.log.Debug("tags fetched", slog.String("pattern", pattern), slog.Int("count", len(raw)))

	return raw, nil
}

// namespaceSet fetches and indexes the tags of namespace.
func (a *app) namespaceSet(namespace string) (nstag.TagSet, error) {
	raw, err := a.tags(source.NamespacePattern(namespace))
	if err != nil {
		return nstag.TagSet{}, err
	}

	return nstag.Build(raw, namespace, nstag.WithLogger(a.log)), nil
}

func (a *app) layout() monorepo.Layout {
	return monorepo.Layout{Repo: a.cfg.Repo, NamespaceRoot: a.cfg.NamespaceRoot}
}

func (a *app) write(v any) error {
	if err := output.Write(a.stdout, a.format, v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// namespaceArg validates a namespace given on the command line.
func namespaceArg(raw string) (string, error) {
	ns := nstag.NormalizeNamespace(raw)
	if !nstag.ValidNamespace(ns) {
		return "", fmt.Errorf("%w: invalid namespace %q", errUsage, raw)
	}

	return ns, nil
}
