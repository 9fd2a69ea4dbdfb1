package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingDirs(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "nested", "investprofile.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "data", "nested"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// second call is a no-op
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_NothingToDo(t *testing.T) {
	for _, p := range []string{"", ":memory:", "local.db"} {
		require.NoError(t, EnsureParentDir(p), p)
	}
}

func TestEnsureParentDir_FailsWhenParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "investprofile.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}
