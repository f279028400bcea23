package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('runs','prices')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["runs"])
	assert.True(t, found["prices"])
}

func TestSQLiteRecordAndList(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	rec := Record{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.12, Call: 7.50514, Put: 2.62808}
	require.NoError(t, s.Record(rec))

	got, err := s.ListRun(s.RunID())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])

	ri, err := s.GetRun(s.RunID())
	require.NoError(t, err)
	assert.Equal(t, 1, ri.Points)

	_, err = s.GetRun("NO_SUCH_RUN")
	assert.Error(t, err)
}

func TestSQLiteRunsAreSeparate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.db")

	a, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, a.Record(Record{S: 1, K: 1, T: 1, Sigma: 1}))
	require.NoError(t, a.Close())

	b, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	assert.NotEqual(t, a.RunID(), b.RunID())

	runs, err := b.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	got, err := b.ListRun(a.RunID())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = b.ListRun(b.RunID())
	require.NoError(t, err)
	assert.Empty(t, got)
}
