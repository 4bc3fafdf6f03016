package paraboladraw

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

const (
	// DefaultPNGSize is the edge length of a plot when none is given.
	DefaultPNGSize = 512
	// plotMargin is the blank border around the plot area, in pixels.
	plotMargin = 16
)

var curveColors = []gg.RGBA{
	gg.Hex("#1f77b4"),
	gg.Hex("#d62728"),
	gg.Hex("#2ca02c"),
	gg.Hex("#9467bd"),
}

// DrawPNG renders the curve, its focus and directrix to a square PNG.
func (f *Curve) DrawPNG(path string, size int) error {
	return DrawPNG(path, size, f)
}

// DrawPNG renders one or more curves on shared axes. The view is the
// union of the sample extents and the focus points.
func DrawPNG(path string, size int, curves ...*Curve) error {
	if len(curves) == 0 {
		return errors.New("paraboladraw: no curves to plot")
	}
	if size <= 2*plotMargin {
		return fmt.Errorf("paraboladraw: plot size %d too small", size)
	}

	xmin, xmax := curves[0].GetXmin(), curves[0].GetXmax()
	ymin, ymax := curves[0].GetYmin(), curves[0].GetYmax()
	for _, c := range curves {
		fp := c.Parabola()
		xmin, xmax = min(xmin, c.GetXmin(), fp.FocusX), max(xmax, c.GetXmax(), fp.FocusX)
		ymin, ymax = min(ymin, c.GetYmin(), fp.DirectrixY), max(ymax, c.GetYmax(), fp.FocusY)
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}

	span := float64(size - 2*plotMargin)
	px := func(x float64) float64 { return plotMargin + (x-xmin)/(xmax-xmin)*span }
	py := func(y float64) float64 { return plotMargin + (ymax-y)/(ymax-ymin)*span }

	dc := gg.NewContext(size, size)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	// axes
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	axes := false
	if ymin <= 0 && ymax >= 0 {
		dc.DrawLine(px(xmin), py(0), px(xmax), py(0))
		axes = true
	}
	if xmin <= 0 && xmax >= 0 {
		dc.DrawLine(px(0), py(ymin), px(0), py(ymax))
		axes = true
	}
	if axes {
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke axes: %w", err)
		}
	}

	for i, c := range curves {
		col := curveColors[i%len(curveColors)]
		fp := c.Parabola()

		dc.SetColor(col.Color())
		dc.SetLineWidth(1)
		dc.SetDash(4, 4)
		dc.DrawLine(px(xmin), py(fp.DirectrixY), px(xmax), py(fp.DirectrixY))
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke directrix: %w", err)
		}
		dc.ClearDash()

		dc.SetLineWidth(2)
		for j, p := range c.P {
			if j == 0 {
				dc.MoveTo(px(p.X), py(p.Y))
				continue
			}
			dc.LineTo(px(p.X), py(p.Y))
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke curve: %w", err)
		}

		dc.DrawCircle(px(fp.FocusX), py(fp.FocusY), 3)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill focus: %w", err)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	Logger().Info("wrote plot", "path", path, "curves", len(curves))
	return nil
}
