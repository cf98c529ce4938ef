package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExecutable_PicksFirstExisting(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(real, []byte("#!/bin/sh\n"), 0o755))

	path, err := ResolveExecutable([]string{filepath.Join(dir, "missing"), real})
	require.NoError(t, err)
	assert.Equal(t, real, path)
}

func TestResolveExecutable_PrefersEarlierCandidates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(first, nil, 0o755))
	require.NoError(t, os.WriteFile(second, nil, 0o755))

	path, err := ResolveExecutable([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, first, path)
}

func TestResolveExecutable_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "tool")
	require.NoError(t, os.Mkdir(sub, 0o755))
	real := filepath.Join(dir, "real")
	require.NoError(t, os.WriteFile(real, nil, 0o755))

	path, err := ResolveExecutable([]string{sub, real})
	require.NoError(t, err)
	assert.Equal(t, real, path)
}

func TestResolveExecutable_NoneFound(t *testing.T) {
	_, err := ResolveExecutable([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)

	_, err = ResolveExecutable(nil)
	assert.Error(t, err)
}
