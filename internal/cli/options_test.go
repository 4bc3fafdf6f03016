package cli

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(NewFlagSet("test"), args)
	require.NoError(t, err)
	return o
}

func TestParseDefaults(t *testing.T) {
	o := mustParse(t)
	assert.Equal(t, ".", o.Dir)
	assert.Equal(t, 512, o.PNGSize)
	assert.False(t, o.JSON || o.PostScript || o.PNG || o.Intersect || o.Verbose)
}

func TestParseFlags(t *testing.T) {
	o := mustParse(t, "-dir", "out", "-json", "-ps", "-png", "-png-size", "64", "-intersect", "-v")
	assert.Equal(t, Options{
		Dir: "out", JSON: true, PostScript: true, PNG: true, PNGSize: 64, Intersect: true, Verbose: true,
	}, o)
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"extra"},
		{"-dir", ""},
		{"-png", "-png-size", "0"},
		{"-nope"},
	} {
		fs := NewFlagSet("test")
		fs.SetOutput(nopWriter{})
		_, err := ParseArgs(fs, args)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseHelp(t *testing.T) {
	fs := NewFlagSet("test")
	fs.SetOutput(nopWriter{})
	_, err := ParseArgs(fs, []string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
