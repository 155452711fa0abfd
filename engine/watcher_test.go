package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reloadPaths(r *ResourceWatcher, t time.Duration) []string {
	var aux kumiki.Resources
	_, de := r.Update(nil, &aux, t, 0)
	paths := make([]string, 0, len(de))
	for _, e := range de {
		paths = append(paths, e.Path())
	}
	return paths
}

func TestResourceWatcher(t *testing.T) {
	dir := t.TempDir()
	r, err := NewResourceWatcher([]string{dir}, []string{".YAML"})
	require.NoError(t, err)
	defer r.Close()

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(level, []byte("a: 1"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, reloadPaths(r, 0)...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{level}, got)

	// Further changes within the debounce window are collapsed.
	require.NoError(t, os.WriteFile(level, []byte("a: 2"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, reloadPaths(r, r.Debounce/2))

	require.NoError(t, os.WriteFile(level, []byte("a: 3"), 0o644))
	got = nil
	require.Eventually(t, func() bool {
		got = append(got, reloadPaths(r, time.Second)...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{level}, got)
}

func TestResourceWatcherMissingDir(t *testing.T) {
	_, err := NewResourceWatcher([]string{filepath.Join(t.TempDir(), "missing")}, nil)
	assert.Error(t, err)
}
