// Package monorepo checks namespaces against the directory layout of a
// monorepo, where every releasable component lives in its own directory
// under a common root (for example internal/<namespace>).
package monorepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrUnknownNamespace reports a namespace without a component directory.
var ErrUnknownNamespace = errors.New("unknown namespace")

// Layout locates component directories.
type Layout struct {
	// Repo is the repository root.
	Repo string
	// NamespaceRoot is the directory under Repo holding one subdirectory
	// per namespace. Empty disables checks.
	NamespaceRoot string
}

// Enabled reports whether the layout can check anything.
func (l Layout) Enabled() bool {
	return l.NamespaceRoot != ""
}

// Dir returns the component directory of namespace.
func (l Layout) Dir(namespace string) string {
	return filepath.Join(l.Repo, l.NamespaceRoot, namespace)
}

// Check returns ErrUnknownNamespace unless namespace has a directory.
// A disabled layout accepts every namespace.
func (l Layout) Check(namespace string) error {
	if !l.Enabled() {
		return nil
	}

	dir := l.Dir(namespace)

	fi, err := os.Lstat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w %q: no directory %s", ErrUnknownNamespace, namespace, dir)
	}

	return nil
}

// Namespaces lists component directories, sorted.
func (l Layout) Namespaces() ([]string, error) {
	if !l.Enabled() {
		return nil, nil
	}

	entries, err := os.ReadDir(filepath.Join(l.Repo, l.NamespaceRoot))
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}

	sort.Strings(out)

	return out, nil
}
