package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

// backends runs the same contract against every Store implementation.
func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestStore_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Get(ctx, "absent")
			require.NoError(t, err)
			assert.False(t, ok, "absent key must report ok=false")

			require.NoError(t, s.Set(ctx, "k", []byte("old")))
			require.NoError(t, s.Set(ctx, "k", []byte("new")))
			v, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("new"), v)

			require.NoError(t, s.Set(ctx, "empty", []byte{}))
			v, ok, err = s.Get(ctx, "empty")
			require.NoError(t, err)
			assert.True(t, ok, "empty value is not the same as absent")
			assert.Empty(t, v)

			require.NoError(t, s.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
			for _, k := range []string{"a", "b"} {
				_, ok, err := s.Get(ctx, k)
				require.NoError(t, err)
				assert.True(t, ok, k)
			}

			require.NoError(t, s.Delete(ctx, "a", "b", "never-set"))
			require.NoError(t, s.Delete(ctx, "k"))
			require.NoError(t, s.Delete(ctx, "k"), "delete is idempotent")
			require.NoError(t, s.Delete(ctx))

			for _, k := range []string{"a", "b", "k"} {
				_, ok, err := s.Get(ctx, k)
				require.NoError(t, err)
				assert.False(t, ok, k)
			}
		})
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, "persist", []byte(`{"x":1}`)))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewSQLiteStore(db).Get(ctx, "persist")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"x":1}`, string(v))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	out, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), out)
	out[0] = 'Y'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestNewKeys(t *testing.T) {
	k := NewKeys("@InvestApp:")
	assert.Equal(t, "@InvestApp:user", k.User)
	assert.Equal(t, "@InvestApp:token", k.Token)
	assert.Equal(t, "@InvestApp:registeredUsers", k.RegisteredUsers)
	assert.Equal(t, "@InvestApp:registeredUsersSeq", k.RegisteredUsersSeq)
	assert.Equal(t, "@InvestApp:questionnaireAnswers", k.Answers)
	assert.Equal(t, "@InvestApp:selectedPortfolio", k.SelectedPortfolio)
}
