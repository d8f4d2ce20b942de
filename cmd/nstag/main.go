/*
Package main is the nstag CLI (namespaced semver tags).
It derives the next release tag of a monorepo component, describes pushed
tag refs and lists a component's release history.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/nstag"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errUsage marks errors caused by bad invocation rather than repository state.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(ctx, stdin, stdout, stderr)

	parser, err := newParser(a)
	if err != nil {
		fmt.Fprintf(stderr, "nstag: %v\n", err)
		return exitFail
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagErr.Message)
			return exitOK
		}

		fmt.Fprintf(stderr, "nstag: %v\n", err)
		return exitCode(err)
	}

	return exitOK
}

func newParser(a *app) (*flags.Parser, error) {
	parser := flags.NewParser(a, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "nstag"
	parser.LongDescription = `nstag resolves namespaced release tags of a monorepo.
Tags look like <namespace>/vMAJOR.MINOR.PATCH[-N], where -N marks release candidate N.
Tags come from git (default), stdin or a file; output is text, json or yaml.`

	commands := []struct {
		name, short, long string
		data              any
	}{
		{
			name:  "next",
			short: "Print the next tag of a namespace",
			long:  "Computes the current, previous and next versions of a namespace for exactly one bump kind. Minor releases also list the hotfixes of the superseded minor line.",
			data:  &nextCommand{app: a},
		},
		{
			name:  "describe",
			short: "Describe a pushed tag ref",
			long:  "Finds the previous release and the folded-in hotfixes of refs/tags/<namespace>/vX.Y.Z[-N]. Branch refs are skipped.",
			data:  &describeCommand{app: a},
		},
		{
			name:  "list",
			short: "List the release history of a namespace",
			long:  "Filters, aggregates and sorts the tags of a namespace.",
			data:  &listCommand{app: a},
		},
		{
			name:  "namespaces",
			short: "List namespaces",
			long:  "Lists namespaces that carry at least one tag, or component directories with --dirs.",
			data:  &namespacesCommand{app: a},
		},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, fmt.Errorf("register %s command: %w", c.name, err)
		}
	}

	return parser, nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var flagErr *flags.Error

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &flagErr),
		errors.Is(err, errUsage),
		errors.Is(err, nstag.ErrBumpKindSelection),
		errors.Is(err, nstag.ErrInvalidBumpKind),
		errors.Is(err, nstag.ErrInvalidRange):
		return exitUsage
	case errors.Is(err, nstag.ErrVersionOverflow):
		return exitFail
	default:
		return exitFail
	}
}
