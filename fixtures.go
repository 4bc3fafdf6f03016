package paraboladraw

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Fixture is one named curve to be written by DrawFixtures.
type Fixture struct {
	Name       string
	Parabola   Parabola
	Xmin, Xmax float64
}

// Directrix values shared by the wide-range fixture blocks.
const (
	directrixNear = -0.2023796
	directrixFar  = -1
)

// Fixtures are the sweep-line test parabolas, in the order they are
// written. Names are fixed and repeat the same focus numbering across
// the directrix blocks.
var Fixtures = []Fixture{
	{Name: "p0--1.txt", Parabola: Parabola{FocusX: 0, FocusY: 4, DirectrixY: 1}, Xmin: -4, Xmax: 4},
	{Name: "p0--0.txt", Parabola: Parabola{FocusX: 0, FocusY: 4, DirectrixY: 0}, Xmin: -4, Xmax: 4},
	{Name: "p2--0.txt", Parabola: Parabola{FocusX: 2, FocusY: 1, DirectrixY: 0}, Xmin: -4, Xmax: 4},

	{Name: "p0--0.2.txt", Parabola: Parabola{FocusX: 0, FocusY: 4, DirectrixY: directrixNear}, Xmin: -40, Xmax: 40},
	{Name: "p1--0.2.txt", Parabola: Parabola{FocusX: 2, FocusY: 1, DirectrixY: directrixNear}, Xmin: -40, Xmax: 40},
	{Name: "p2--0.2.txt", Parabola: Parabola{FocusX: 1, FocusY: 0, DirectrixY: directrixNear}, Xmin: -40, Xmax: 40},

	{Name: "p0---1.txt", Parabola: Parabola{FocusX: 0, FocusY: 4, DirectrixY: directrixFar}, Xmin: -40, Xmax: 40},
	{Name: "p1---1.txt", Parabola: Parabola{FocusX: 2, FocusY: 1, DirectrixY: directrixFar}, Xmin: -40, Xmax: 40},
	{Name: "p2---1.txt", Parabola: Parabola{FocusX: 1, FocusY: 0, DirectrixY: directrixFar}, Xmin: -40, Xmax: 40},
}

// DrawOptions selects the extra outputs written next to each table.
type DrawOptions struct {
	JSON       bool
	PostScript bool
	PNG        bool
	PNGSize    int
}

// DrawFixtures writes every fixture into dir, one after another.
// It returns the paths written, stopping at the first error or when ctx
// is done.
func DrawFixtures(ctx context.Context, dir string, opts DrawOptions, fixtures ...Fixture) ([]string, error) {
	if len(fixtures) == 0 {
		fixtures = Fixtures
	}
	var written []string
	for _, fx := range fixtures {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		paths, err := drawFixture(dir, fx, opts)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func drawFixture(dir string, fx Fixture, opts DrawOptions) ([]string, error) {
	f, err := Sample(fx.Parabola, fx.Xmin, fx.Xmax)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", fx.Name, err)
	}

	path := filepath.Join(dir, fx.Name)
	if err := f.WriteFile(path); err != nil {
		return nil, err
	}
	written := []string{path}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if opts.JSON {
		p := base + ".json"
		if err := f.SaveJSON(p); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	if opts.PostScript {
		p := base + ".ps"
		if err := f.DrawPS(p); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	if opts.PNG {
		size := opts.PNGSize
		if size == 0 {
			size = DefaultPNGSize
		}
		p := base + ".png"
		if err := f.DrawPNG(p, size); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	return written, nil
}

// FixtureIntersection is the crossing of two fixture arcs that share a
// directrix.
type FixtureIntersection struct {
	A, B   string
	Points []Point
}

// Intersections returns the arc intersections of every pair of fixtures
// with the same directrix, in fixture order.
func Intersections(fixtures ...Fixture) ([]FixtureIntersection, error) {
	if len(fixtures) == 0 {
		fixtures = Fixtures
	}
	var out []FixtureIntersection
	for i := range fixtures {
		for j := i + 1; j < len(fixtures); j++ {
			a, b := fixtures[i], fixtures[j]
			if a.Parabola.DirectrixY != b.Parabola.DirectrixY {
				continue
			}
			pts, err := a.Parabola.Intersect(b.Parabola)
			if err != nil {
				return out, fmt.Errorf("%s x %s: %w", a.Name, b.Name, err)
			}
			out = append(out, FixtureIntersection{A: a.Name, B: b.Name, Points: pts})
		}
	}
	return out, nil
}
