package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Git lists tags of a local repository with `git tag -l`.
type Git struct {
	// Dir is the work tree; empty means the current directory.
	Dir string

	// Logger receives debug diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Tags runs `git -C <dir> tag -l [pattern]`.
func (g Git) Tags(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	args := []string{"tag", "--list"}
	if g.Dir != "" {
		args = append([]string{"-C", g.Dir}, args...)
	}

	if pattern != "" {
		args = append(args, pattern)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)

	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("git tag list failed: %s: %w", strings.TrimSpace(string(ee.Stderr)), err)
		}

		return nil, fmt.Errorf("git tag list failed: %w", err)
	}

	tags := splitLines(string(out))

	g.log().Debug("listed git tags",
		slog.String("dir", g.Dir),
		slog.String("pattern", pattern),
		slog.Int("count", len(tags)),
	)

	return tags, nil
}

func (g Git) log() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}

	return slog.Default()
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}

	return out
}

// NamespacePattern is the git glob matching every tag of namespace,
// with or without the "v" prefix.
func NamespacePattern(namespace string) string {
	if namespace == "" {
		return ""
	}

	return namespace + "/*"
}
