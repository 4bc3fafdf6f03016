package cli

import (
	"flag"
	"fmt"
	"io"

	paraboladraw "github.com/Maxime2/parabola-draw"
)

type Options struct {
	Dir        string
	JSON       bool
	PostScript bool
	PNG        bool
	PNGSize    int
	Intersect  bool
	Verbose    bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(n string) string {
			if f := fs.Lookup(n); f != nil {
				return f.DefValue
			}
			return ""
		}
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)
		_, _ = fmt.Fprintln(out, "\nWrites the parabola fixture tables (x  y per line).")
		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "  -dir string        Output directory [%s]\n", def("dir"))
		_, _ = fmt.Fprintf(out, "  -json              Also write a JSON dump per fixture [%s]\n", def("json"))
		_, _ = fmt.Fprintf(out, "  -ps                Also write a PostScript plot per fixture [%s]\n", def("ps"))
		_, _ = fmt.Fprintf(out, "  -png               Also write a PNG plot per fixture [%s]\n", def("png"))
		_, _ = fmt.Fprintf(out, "  -png-size int      PNG edge length in pixels [%s]\n", def("png-size"))
		_, _ = fmt.Fprintln(out, "\nAnalysis:")
		_, _ = fmt.Fprintf(out, "  -intersect         Print arc intersections of fixtures sharing a directrix [%s]\n", def("intersect"))
		_, _ = fmt.Fprintln(out, "\nMisc:")
		_, _ = fmt.Fprintf(out, "  -v                 Debug logging on stderr [%s]\n", def("v"))
		_, _ = fmt.Fprintln(out, "  -h                 Show this help")
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	fs.StringVar(&o.Dir, "dir", ".", "output directory")
	fs.BoolVar(&o.JSON, "json", false, "also write a JSON dump per fixture")
	fs.BoolVar(&o.PostScript, "ps", false, "also write a PostScript plot per fixture")
	fs.BoolVar(&o.PNG, "png", false, "also write a PNG plot per fixture")
	fs.IntVar(&o.PNGSize, "png-size", paraboladraw.DefaultPNGSize, "PNG edge length in pixels")
	fs.BoolVar(&o.Intersect, "intersect", false, "print arc intersections")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Dir == "" {
		return o, fmt.Errorf("-dir must not be empty")
	}
	if o.PNG && o.PNGSize <= 0 {
		return o, fmt.Errorf("-png-size must be positive, got %d", o.PNGSize)
	}
	return o, nil
}

// usage writes the flag set's help text to w.
func usage(fs *flag.FlagSet, w io.Writer) {
	fs.SetOutput(w)
	fs.Usage()
}
