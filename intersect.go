package paraboladraw

import (
	"math"

	"github.com/gogpu/gg"
)

// curvatureEpsilon is the relative difference below which two
// curvatures are taken as equal.
const curvatureEpsilon = 1e-12

// Intersect returns the points where p and q meet, in ascending x.
//
// Writing each parabola in vertex form y = a*(x-fx)^2 + vy, the
// difference of the two is a*x^2 + b*x + c with
//
//	a = a1 - a2
//	b = -2*(a1*fx1 - a2*fx2)
//	c = a1*fx1^2 - a2*fx2^2 + vy1 - vy2
//
// Equal curvature (shared focus-directrix distance) leaves a linear
// equation and at most one crossing.
func (p Parabola) Intersect(q Parabola) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if p == q {
		return nil, ErrCoincident
	}

	a1, a2 := p.curvature(), q.curvature()
	v1, v2 := p.Vertex(), q.Vertex()
	a := a1 - a2
	b := -2 * (a1*p.FocusX - a2*q.FocusX)
	c := a1*p.FocusX*p.FocusX - a2*q.FocusX*q.FocusX + v1.Y - v2.Y
	if math.Abs(a) <= curvatureEpsilon*max(a1, a2) {
		a = 0
	}
	if a == 0 && b == 0 && c == 0 {
		return nil, ErrCoincident
	}

	roots := gg.SolveQuadratic(a, b, c)
	Logger().Debug("parabola intersection", "p", p.String(), "q", q.String(), "roots", len(roots))

	pts := make([]Point, 0, len(roots))
	for _, x := range roots {
		pts = append(pts, Point{X: x, Y: p.F(x)})
	}
	return pts, nil
}
