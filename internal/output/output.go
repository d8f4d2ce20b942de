// Package output renders command results as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/nstag"
)

// Format is an output encoding.
type Format string

const (
	// Text prints bare values meant for shell substitution.
	Text Format = "text"
	// JSON prints indented JSON.
	JSON Format = "json"
	// YAML prints YAML.
	YAML Format = "yaml"
)

// ParseFormat maps a name to Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", Text:
		return Text, nil
	case JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
	}
}

// Write encodes v to w.
//
// Text output depends on v: a Result prints the next tag name, a Release
// prints key=value lines, lists print one item per line.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	default:
		return writeText(w, v)
	}
}

func writeText(w io.Writer, v any) error {
	switch x := v.(type) {
	case nstag.Result:
		_, err := fmt.Fprintln(w, x.Tag)
		return err

	case nstag.Release:
		return writeRelease(w, x)

	case []nstag.Tag:
		for _, t := range x {
			if _, err := fmt.Fprintln(w, nstag.Format(t)); err != nil {
				return err
			}
		}
		return nil

	case []string:
		for _, s := range x {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil

	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

func writeRelease(w io.Writer, r nstag.Release) error {
	previous := ""
	if r.Previous != nil {
		previous = nstag.Format(*r.Previous)
	}

	lines := [][2]string{
		{"tag", nstag.Format(r.Tag)},
		{"short_tag", r.ShortTag},
		{"kind", r.Kind.String()},
		{"previous_tag", previous},
		{"hotfixes", joinTags(r.Hotfixes)},
		{"stable", strconv.FormatBool(r.IsStableRelease)},
	}

	for _, kv := range lines {
		if _, err := fmt.Fprintf(w, "%s=%s\n", kv[0], kv[1]); err != nil {
			return err
		}
	}

	return nil
}

func joinTags(tags []nstag.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, nstag.Format(t))
	}

	return strings.Join(names, ",")
}
