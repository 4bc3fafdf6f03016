package paraboladraw

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Dump is a serializable representation of a Curve.
type Dump struct {
	Parabola Parabola `json:"parabola"`
	Xmin     float64  `json:"xmin"`
	Xmax     float64  `json:"xmax"`
	Step     float64  `json:"step"`
	Points   []Point  `json:"points"`
}

// FromDump restores a curve from a dump.
// Points are sorted by X since the dump may come from an untrusted source.
func (f *Curve) FromDump(d *Dump) error {
	if err := d.Parabola.Validate(); err != nil {
		return err
	}
	if len(d.Points) == 0 || !(d.Xmax > d.Xmin) {
		return fmt.Errorf("%w: [%v, %v] with %d points", ErrEmptyRange, d.Xmin, d.Xmax, len(d.Points))
	}
	f.parabola = d.Parabola
	f.xmin, f.xmax = d.Xmin, d.Xmax
	f.istep = d.Step
	f.P = slices.Clone(d.Points)

	slices.SortFunc(f.P, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})

	f.update()
	return nil
}

// Dump generates a serializable dump for a curve.
func (f *Curve) Dump() *Dump {
	return &Dump{
		Parabola: f.parabola,
		Xmin:     f.xmin,
		Xmax:     f.xmax,
		Step:     f.istep,
		Points:   slices.Clone(f.P),
	}
}

// MarshalJSON implements the json.Marshaler interface for Curve.
func (f *Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Curve.
func (f *Curve) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	return f.FromDump(&dump)
}

// SaveJSON writes the curve dump to path.
func (f *Curve) SaveJSON(path string) error {
	b, err := json.MarshalIndent(f.Dump(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Logger().Info("wrote curve dump", "path", path)
	return nil
}

// LoadJSON reads a curve dump written by SaveJSON.
func LoadJSON(path string) (*Curve, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f := &Curve{}
	if err := json.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}
