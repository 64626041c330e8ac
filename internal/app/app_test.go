package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/minigrep/internal/search"
)

func poemFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pushkin.txt")
	require.NoError(t, os.WriteFile(p, []byte("Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.\n"), 0o644))
	return p
}

func resolve(t *testing.T, query, path string, caseInsensitive bool) Config {
	t.Helper()
	cfg, err := Resolve(slices.Values([]string{"minigrep", query, path}), caseInsensitive)
	require.NoError(t, err)
	return cfg
}

func TestRun_WritesMatches(t *testing.T) {
	var out bytes.Buffer
	a := New(resolve(t, "duct", poemFile(t), false), Settings{}, &out)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "safe, fast, productive.\n", out.String())
	assert.Equal(t, 1, a.Matches())
}

func TestRun_CaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	a := New(resolve(t, "DUCT", poemFile(t), true), Settings{}, &out)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "safe, fast, productive.\nDuct tape.\n", out.String())
	assert.Equal(t, 2, a.Matches())
}

func TestRun_NoMatches(t *testing.T) {
	var out bytes.Buffer
	a := New(resolve(t, "monomorphization", poemFile(t), false), Settings{}, &out)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Zero(t, a.Matches())
}

func TestRun_NonexistentFile(t *testing.T) {
	var out bytes.Buffer
	a := New(resolve(t, "query", filepath.Join(t.TempDir(), "lermontov.odf"), false), Settings{}, &out)

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "no such file or directory")
	assert.Empty(t, out.String())
}

func TestRun_InvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(p, []byte("caf\xe9 au lait\n"), 0o644))

	var out bytes.Buffer
	err := New(resolve(t, "caf", p, false), Settings{}, &out).Run(context.Background())
	assert.ErrorIs(t, err, search.ErrInvalidUTF8)
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, New(resolve(t, "CAFÉ", p, true), Settings{Encoding: "latin1"}, &out).Run(context.Background()))
	assert.Equal(t, "café au lait\n", out.String())
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(resolve(t, "duct", poemFile(t), false), Settings{}, &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	err := New(resolve(t, "duct", poemFile(t), false), Settings{}, failingWriter{}).Run(context.Background())
	assert.ErrorContains(t, err, "write output: disk full")
}

func TestVersionString(t *testing.T) {
	assert.Contains(t, VersionString(), BuildVersion)
}
