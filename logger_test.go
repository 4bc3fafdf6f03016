package paraboladraw

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSilentByDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, ParabolaDraw(path, Parabola{FocusY: 1}, -1, 1))

	out := buf.String()
	assert.Contains(t, out, "sampled parabola")
	assert.Contains(t, out, "wrote curve")
	assert.Contains(t, out, "points=1000")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
