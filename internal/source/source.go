// Package source provides raw tag listings for the resolver.
//
// A Source returns every tag name it can see; filtering by namespace and
// parsing happen in the nstag package. Sources are fully drained before they
// return, so callers never deal with pagination.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source lists raw tag names.
type Source interface {
	// Tags returns tag names matching pattern (a git glob such as "api/*");
	// an empty pattern means every tag. Sources that cannot filter return
	// everything and leave filtering to the caller.
	Tags(ctx context.Context, pattern string) ([]string, error)
}

// maxLine bounds a single tag line read from a stream.
const maxLine = 10 * 1024 * 1024

// Static serves a fixed tag list.
type Static []string

// Tags returns a copy of the list.
func (s Static) Tags(ctx context.Context, _ string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]string(nil), s...), nil
}

// Reader reads tag names from R, one per line; blank lines are ignored.
type Reader struct {
	R io.Reader
}

// Tags drains the reader.
func (r Reader) Tags(ctx context.Context, _ string) ([]string, error) {
	return readLines(ctx, r.R)
}

// File reads tag names from Path, one per line.
type File struct {
	Path string
}

// Tags reads the whole file.
func (f File) Tags(ctx context.Context, _ string) ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open tag list: %w", err)
	}
	defer fh.Close()

	return readLines(ctx, fh)
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	out := make([]string, 0, 256)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	return out, nil
}
