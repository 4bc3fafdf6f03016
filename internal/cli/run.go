package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"syscall"

	paraboladraw "github.com/Maxime2/parabola-draw"
)

// fixtures is the set drawn and intersected by RunContext.
var fixtures = paraboladraw.Fixtures

// isBrokenPipe reports whether the downstream reader went away early.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// flush returns the exit code for a final flush of stdout.
func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); isBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return code
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := NewFlagSet("paraboladraw")
	fs.SetOutput(io.Discard)

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(fs, outw)
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		usage(fs, stderr)
		return 2
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	paraboladraw.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer paraboladraw.SetLogger(nil)

	if opts.Intersect {
		if err := printIntersections(outw, fixtures...); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return flush(outw, stderr, 1)
		}
	}

	_, err = paraboladraw.DrawFixtures(ctx, opts.Dir, paraboladraw.DrawOptions{
		JSON:       opts.JSON,
		PostScript: opts.PostScript,
		PNG:        opts.PNG,
		PNGSize:    opts.PNGSize,
	}, fixtures...)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if ctx.Err() != nil {
			return flush(outw, stderr, 130)
		}
		return flush(outw, stderr, 1)
	}
	return flush(outw, stderr, 0)
}

// printIntersections writes the pairs computed before any error.
func printIntersections(w io.Writer, fxs ...paraboladraw.Fixture) error {
	res, err := paraboladraw.Intersections(fxs...)
	for _, r := range res {
		if len(r.Points) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\n", r.A, r.B)
			continue
		}
		for _, p := range r.Points {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%f\t%f\n", r.A, r.B, p.X, p.Y)
		}
	}
	return err
}
