package paraboladraw

import (
	"bufio"
	"fmt"
	"os"
)

// https://github.com/rsmith-nl/ps-lib/blob/main/grid.inc
// https://stackoverflow.com/a/20866012

// DrawPS writes a PostScript page plotting the samples over a grid.
func (f *Curve) DrawPS(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	ps := bufio.NewWriter(out)

	if f.changed {
		f.update()
	}
	fmt.Fprintf(ps, `%%!PS
%% %v
/grid_major_color {1 .6 .6} def
/grid_color {.7 1 1} def
/line_color {.2 .2 .8} def
/grid_major_lw 1.5 def
/grid_lw .5 def
/major 10 def

%% Usage: dx dy w h gridwh
/gridwh {
  4 dict begin
    /h exch def
    /w exch def
    /dy exch def
    /dx exch def
    gsave
        grid_lw setlinewidth
        grid_color setrgbcolor
        newpath
        dx dx w {
            0 moveto
            0 h rlineto
        } for
        dy dy h {
            0 exch moveto
            w 0 rlineto
        } for
        stroke
        newpath
        grid_major_lw setlinewidth
        grid_major_color setrgbcolor
        0 dx major mul w {
            0 moveto
            0 h rlineto
        } for
        0 dy major mul h {
            0 exch moveto
            w 0 rlineto
        } for
        stroke
    grestore
  end
} bind def
`, f.parabola)

	fmt.Fprintf(ps, "/XValues [\n")
	for i, p := range f.P {
		fmt.Fprintf(ps, " %f\t%% %v\n", p.X, i)
	}
	fmt.Fprintf(ps, "] def\n")

	fmt.Fprintf(ps, "/YValues [\n")
	for i, p := range f.P {
		fmt.Fprintf(ps, " %f\t%% %v\n", p.Y, i)
	}
	fmt.Fprintf(ps, "] def\n")

	fmt.Fprintf(ps, "/Xmin %f dup %f exch sub 0.01 mul abs sub def\n", f.ixmin, f.ixmax)
	fmt.Fprintf(ps, "/Xmax %f dup %f sub 0.01 mul abs add def\n", f.ixmax, f.ixmin)
	fmt.Fprintf(ps, "/Ymin %f dup %f exch sub 0.01 mul abs sub def\n", f.iymin, f.iymax)
	fmt.Fprintf(ps, "/Ymax %f dup %f sub 0.01 mul abs add def\n", f.iymax, f.iymin)

	fmt.Fprintf(ps, `
/Xsize Xmax Xmin sub def
/Ysize Ymax Ymin sub def

/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

w 10 div h 10 div w h gridwh

/Translate { %% x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def

newpath
line_color setrgbcolor
XValues 0 get YValues 0 get
Translate
moveto
1 1 XValues length 1 sub {
XValues
1 index
get
YValues
2 index
get
Translate
lineto
pop
} for
stroke

/Helvetica findfont 10 scalefont setfont
0 0 0 setrgbcolor
10 10 moveto (x: %f .. %f) show
10 22 moveto (y: %f .. %f) show

showpage
quit
`, f.ixmin, f.ixmax, f.iymin, f.iymax)

	return ps.Flush()
}
