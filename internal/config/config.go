// Package config loads the optional .nstag.yaml file of a monorepo.
//
// Every field has a default, so a missing file is not an error when the path
// was discovered rather than given explicitly. Command line flags override
// file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the repository root.
const FileName = ".nstag.yaml"

const (
	// SourceGit lists tags with `git tag -l`.
	SourceGit = "git"
	// SourceStdin reads tag names from standard input, one per line.
	SourceStdin = "stdin"
	// SourceFile reads tag names from a file, one per line.
	SourceFile = "file"
)

// Config models .nstag.yaml.
type Config struct {
	// NamespaceRoot is the directory, relative to Repo, holding one
	// subdirectory per namespace. Empty disables namespace checks.
	NamespaceRoot string `yaml:"namespace_root"`

	// Source is where tags come from: git, stdin or file.
	Source string `yaml:"source"`

	// File is the tag list path when Source is file.
	File string `yaml:"file,omitempty"`

	// Repo is the git work tree used by the git source.
	Repo string `yaml:"repo"`

	// Output is the default output format: text, json or yaml.
	Output string `yaml:"output"`

	// LogLevel is the default log level.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NamespaceRoot: "internal",
		Source:        SourceGit,
		Repo:          ".",
		Output:        "text",
	}
}

// Load reads path over the defaults.
// When explicit is false a missing file yields the defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg = cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover returns the config path for repo.
func Discover(repo string) string {
	if repo == "" {
		repo = "."
	}

	return filepath.Join(repo, FileName)
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// normalize lower-cases the enumerated fields.
func (c Config) normalize() Config {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))

	return c
}

// Validate checks enumerated fields. Values must be lower case, as Load and
// Merge leave them.
func (c Config) Validate() error {
	switch c.Source {
	case SourceGit, SourceStdin:
	case SourceFile:
		if c.File == "" {
			return errors.New("source file requires file")
		}
	default:
		return fmt.Errorf("unknown source %q (valid: git, stdin, file)", c.Source)
	}

	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output %q (valid: text, json, yaml)", c.Output)
	}

	return nil
}

// Merge returns c with every non-empty field of o applied on top.
// Enumerated fields of the result are lower-cased.
func (c Config) Merge(o Config) Config {
	o = o.normalize()

	if o.NamespaceRoot != "" {
		c.NamespaceRoot = o.NamespaceRoot
	}

	if o.Source != "" {
		c.Source = o.Source
	}

	if o.File != "" {
		c.File = o.File
	}

	if o.Repo != "" {
		c.Repo = o.Repo
	}

	if o.Output != "" {
		c.Output = o.Output
	}

	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}

	return c.normalize()
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
