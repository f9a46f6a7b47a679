package history

import (
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	log := zaptest.NewLogger(t).Sugar()

	db, err := Open(filepath.Join(t.TempDir(), "history.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, log))
	return NewStore(db, log)
}

func TestOpen_Pragmas(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	defer db.Close()

	var journalMode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var foreignKeys int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestMigrate_Idempotent(t *testing.T) {
	log := zaptest.NewLogger(t).Sugar()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, log))
	require.NoError(t, Migrate(db, log))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)

	known := map[string]int{"Audit Rights": 1, "Anti-Assignment": 0}
	preds := []Prediction{
		{Term: "Cap On Liability", Class: 1, Probability: 0.78},
		{Term: "Uncapped Liability", Class: 0, Probability: 0.78},
	}

	id, err := store.RecordRun("data/cuad.tsv", 42, known, preds)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "data/cuad.tsv", run.CorpusPath)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, known, run.Known)

	got, err := store.Predictions(id)
	require.NoError(t, err)
	assert.Equal(t, preds, got)
}

func TestListRuns_NewestFirst(t *testing.T) {
	store := openStore(t)

	first, err := store.RecordRun("a.tsv", 1, map[string]int{}, nil)
	require.NoError(t, err)
	second, err := store.RecordRun("b.tsv", 2, map[string]int{}, nil)
	require.NoError(t, err)

	runs, err := store.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	// Timestamps can collide at second resolution; accept either newest
	assert.Contains(t, []string{first, second}, runs[0].ID)

	runs, err = store.ListRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRecordRun_InsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO runs").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewStore(db, nil)
	_, err = store.RecordRun("x.tsv", 7, map[string]int{"Audit Rights": 1}, nil)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
