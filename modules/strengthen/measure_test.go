package strengthen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasurerDisabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ENV_SEQMATCH_PROFILE_DIR, dir)
	var buf bytes.Buffer
	m := NewMeasurer("search", &buf, false)
	require.Empty(t, m.Paths())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Empty(t, buf.String())
}

func TestMeasurer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	t.Setenv(ENV_SEQMATCH_PROFILE_DIR, dir)
	require.Equal(t, dir, ProfileDir())

	var buf bytes.Buffer
	m := NewMeasurer("sort", &buf, true)
	paths := m.Paths()
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.Equal(t, dir, filepath.Dir(p))
		require.True(t, strings.HasPrefix(filepath.Base(p), "seqmatch-sort-"), p)
	}
	require.NoError(t, m.Close())
	for _, p := range paths {
		st, err := os.Stat(p)
		require.NoError(t, err)
		require.NotZero(t, st.Size(), p)
		require.Contains(t, buf.String(), p)
	}
	require.NoError(t, m.Close())
}

func TestProfileDirDefault(t *testing.T) {
	t.Setenv(ENV_SEQMATCH_PROFILE_DIR, "")
	require.Equal(t, os.TempDir(), ProfileDir())
}
