package paraboladraw

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theothertomelliott/acyclic"
)

func TestCurveJSON(t *testing.T) {
	f, err := SampleN(Parabola{FocusX: 1, FocusY: 0, DirectrixY: -0.2023796}, -40, 40, 50)
	require.NoError(t, err)
	require.NoError(t, acyclic.Check(f.Dump()))

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var g Curve
	require.NoError(t, json.Unmarshal(b, &g))
	if d := pretty.Compare(f.Dump(), g.Dump()); d != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", d)
	}
	assert.Equal(t, f.GetYmax(), g.GetYmax())
	assert.Equal(t, f.F(3.3), g.F(3.3))
}

func TestFromDumpSorts(t *testing.T) {
	f, err := SampleN(Parabola{FocusY: 1}, 0, 10, 10)
	require.NoError(t, err)
	d := f.Dump()
	slices.Reverse(d.Points)

	var g Curve
	require.NoError(t, g.FromDump(d))
	assert.True(t, slices.IsSortedFunc(g.P, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	}))
	assert.Equal(t, 0.0, g.GetXmin())
	assert.Equal(t, 9.0, g.GetXmax())
}

func TestFromDumpRejectsDegenerate(t *testing.T) {
	var g Curve
	err := json.Unmarshal([]byte(`{"parabola":{"focus_x":0,"focus_y":1,"directrix_y":2},"points":[]}`), &g)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestFromDumpRejectsEmpty(t *testing.T) {
	f, err := SampleN(Parabola{FocusY: 1}, 0, 10, 10)
	require.NoError(t, err)

	d := f.Dump()
	d.Points = nil
	var g Curve
	assert.ErrorIs(t, g.FromDump(d), ErrEmptyRange)

	d = f.Dump()
	d.Xmin, d.Xmax = 10, 0
	assert.ErrorIs(t, g.FromDump(d), ErrEmptyRange)

	err = json.Unmarshal([]byte(`{"parabola":{"focus_x":0,"focus_y":1,"directrix_y":0},"xmin":-1,"xmax":1,"points":[]}`), &g)
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestSaveLoadJSON(t *testing.T) {
	f, err := Sample(Parabola{FocusX: 2, FocusY: 1, DirectrixY: 0}, -4, 4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "p2--0.json")
	require.NoError(t, f.SaveJSON(path))

	g, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, f.Parabola(), g.Parabola())
	assert.Equal(t, f.GetNdots(), g.GetNdots())

	_, err = LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
