package paraboladraw

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, path string) []Point {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	var pts []Point
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		require.Len(t, fields, 2, "line %q", sc.Text())
		x, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		pts = append(pts, Point{X: x, Y: y})
	}
	require.NoError(t, sc.Err())
	return pts
}

func TestParabolaDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p0---1.txt")
	p := Parabola{FocusX: 0, FocusY: 4, DirectrixY: -1}
	require.NoError(t, ParabolaDraw(path, p, -40, 40))

	pts := readTable(t, path)
	require.Len(t, pts, Interval)
	assert.Equal(t, -40.0, pts[0].X)
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 0.08, pts[i].X-pts[i-1].X, 2e-6)
		assert.InDelta(t, p.F(pts[i].X), pts[i].Y, 1e-4)
	}
}

func TestParabolaDrawOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("junk\n", 5000)), 0o644))

	require.NoError(t, ParabolaDraw(path, Parabola{FocusY: 1}, -1, 1))
	assert.Len(t, readTable(t, path), Interval)
}

func TestParabolaDrawRejectsBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	err := ParabolaDraw(path, Parabola{FocusY: 0, DirectrixY: 0}, -4, 4)
	require.ErrorIs(t, err, ErrDegenerate)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file must be created")
}

func TestParabolaDrawUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "p.txt")
	err := ParabolaDraw(path, Parabola{FocusY: 1}, -4, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
