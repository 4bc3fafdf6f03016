package paraboladraw

import (
	"errors"
	"fmt"
)

// Interval is the number of samples taken per curve.
const Interval = 1000

var (
	ErrDegenerate  = errors.New("paraboladraw: focus must lie above the directrix")
	ErrEmptyRange  = errors.New("paraboladraw: xmax must be greater than xmin")
	ErrSampleCount = errors.New("paraboladraw: sample count must be positive")
	ErrCoincident  = errors.New("paraboladraw: parabolas coincide")
)

// Parabola is the locus of points equidistant from the focus
// (FocusX, FocusY) and the horizontal directrix y = DirectrixY.
type Parabola struct {
	FocusX     float64 `json:"focus_x"`
	FocusY     float64 `json:"focus_y"`
	DirectrixY float64 `json:"directrix_y"`
}

// ParabolaFun returns the y coordinate of the parabola at x.
// It panics unless focusY > directrixY.
func ParabolaFun(focusX, focusY, directrixY, x float64) float64 {
	if !(focusY > directrixY) {
		panic(fmt.Sprintf("paraboladraw: focus y %v not above directrix %v", focusY, directrixY))
	}
	distance := focusY - directrixY
	return (x-focusX)*(x-focusX)/(2*distance) + 0.5*(directrixY+focusY)
}

func (p Parabola) Validate() error {
	if !(p.FocusY > p.DirectrixY) {
		return fmt.Errorf("%w: focus %v, directrix %v", ErrDegenerate, p.FocusY, p.DirectrixY)
	}
	return nil
}

// F evaluates the parabola at x. Same precondition as ParabolaFun.
func (p Parabola) F(x float64) float64 {
	return ParabolaFun(p.FocusX, p.FocusY, p.DirectrixY, x)
}

// Vertex is the extremum, midway between focus and directrix.
func (p Parabola) Vertex() Point {
	return Point{X: p.FocusX, Y: 0.5 * (p.FocusY + p.DirectrixY)}
}

// curvature is the coefficient a in y = a*(x-FocusX)^2 + vertexY.
func (p Parabola) curvature() float64 {
	return 0.5 / (p.FocusY - p.DirectrixY)
}

func (p Parabola) String() string {
	return fmt.Sprintf("focus (%v, %v), directrix y=%v", p.FocusX, p.FocusY, p.DirectrixY)
}
