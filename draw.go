package paraboladraw

import (
	"fmt"
	"os"
)

// ParabolaDraw samples p over [xmin, xmax) and writes the table to
// filename, creating or truncating it. An invalid parabola is rejected
// before the file is touched.
func ParabolaDraw(filename string, p Parabola, xmin, xmax float64) error {
	f, err := Sample(p, xmin, xmax)
	if err != nil {
		return fmt.Errorf("draw %s: %w", filename, err)
	}
	return f.WriteFile(filename)
}

// WriteFile writes the table to path, creating or truncating it.
func (f *Curve) WriteFile(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err = f.WriteTo(out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Logger().Info("wrote curve", "path", path, "points", len(f.P))
	return nil
}
