package paraboladraw

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a parabola tabulated over an evenly spaced grid.
type Curve struct {
	parabola                   Parabola
	xmin, xmax                 float64
	ixmin, ixmax, iymin, iymax float64
	istep                      float64
	changed                    bool
	//
	P []Point
}

// Sample tabulates p at Interval points starting at xmin.
func Sample(p Parabola, xmin, xmax float64) (*Curve, error) {
	return SampleN(p, xmin, xmax, Interval)
}

// SampleN tabulates p at n points starting at xmin with step
// (xmax-xmin)/n. The step is accumulated, so the last sample lies one
// step short of xmax.
func SampleN(p Parabola, xmin, xmax float64, n int) (*Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleCount, n)
	}
	if math.IsNaN(xmin) || math.IsInf(xmin, 0) || math.IsNaN(xmax) || math.IsInf(xmax, 0) || !(xmax > xmin) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, xmin, xmax)
	}

	f := &Curve{
		parabola: p,
		xmin:     xmin,
		xmax:     xmax,
		istep:    (xmax - xmin) / float64(n),
		changed:  true,
		P:        make([]Point, 0, n),
	}
	x := xmin
	for i := 0; i < n; i++ {
		f.P = append(f.P, Point{X: x, Y: p.F(x)})
		x += f.istep
	}
	Logger().Debug("sampled parabola", "parabola", p.String(), "xmin", xmin, "xmax", xmax, "n", n)
	return f, nil
}

// F returns the tabulated value at xi, interpolating linearly between
// samples and clamping to the boundary samples outside the grid.
func (f *Curve) F(xi float64) float64 {
	l := len(f.P)
	if l == 0 {
		return math.NaN()
	}
	k, found := slices.BinarySearchFunc(f.P, xi, func(p Point, x float64) int {
		return cmp.Compare(p.X, x)
	})
	if found {
		return f.P[k].Y
	}
	if k == 0 {
		return f.P[0].Y
	}
	if k >= l {
		return f.P[l-1].Y
	}
	left, right := f.P[k-1], f.P[k]
	dx := right.X - left.X
	if dx == 0 {
		return left.Y
	}
	return left.Y + (right.Y-left.Y)*(xi-left.X)/dx
}

// Exact evaluates the underlying parabola rather than the table.
func (f *Curve) Exact(x float64) float64 {
	return f.parabola.F(x)
}

func (f *Curve) update() {
	f.changed = false
	if len(f.P) == 0 {
		f.ixmin, f.ixmax, f.iymin, f.iymax = 0, 0, 0, 0
		return
	}
	f.ixmin, f.ixmax = f.P[0].X, f.P[0].X
	f.iymin, f.iymax = f.P[0].Y, f.P[0].Y
	for _, p := range f.P[1:] {
		f.ixmin = min(f.ixmin, p.X)
		f.ixmax = max(f.ixmax, p.X)
		f.iymin = min(f.iymin, p.Y)
		f.iymax = max(f.iymax, p.Y)
	}
}

func (f *Curve) Parabola() Parabola { return f.parabola }

// Range returns the requested sampling range, not the sample extents.
func (f *Curve) Range() (xmin, xmax float64) { return f.xmin, f.xmax }

func (f *Curve) GetStep() float64 { return f.istep }

func (f *Curve) GetXmin() float64 {
	if f.changed {
		f.update()
	}
	return f.ixmin
}

func (f *Curve) GetXmax() float64 {
	if f.changed {
		f.update()
	}
	return f.ixmax
}

func (f *Curve) GetYmin() float64 {
	if f.changed {
		f.update()
	}
	return f.iymin
}

func (f *Curve) GetYmax() float64 {
	if f.changed {
		f.update()
	}
	return f.iymax
}

func (f *Curve) GetNdots() int {
	return len(f.P)
}

func (f *Curve) String() string {
	s := "\nParabola curve:\n"
	s = fmt.Sprintf("%s\t%v\n", s, f.parabola)
	s = fmt.Sprintf("%s\tixmin: %v; ixmax: %v\n", s, f.GetXmin(), f.GetXmax())
	s = fmt.Sprintf("%s\tiymin: %v; iymax: %v\n", s, f.GetYmin(), f.GetYmax())
	s = fmt.Sprintf("%s\tistep: %v; points: %v\n", s, f.istep, len(f.P))
	return s
}

// WriteTo writes one "x  y" line per sample, both with six decimals.
// Values are separated by two spaces; tables from the older four-space
// generator parse the same but are not byte-identical.
func (f *Curve) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, p := range f.P {
		n, err := fmt.Fprintf(bw, "%f  %f\n", p.X, p.Y)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
