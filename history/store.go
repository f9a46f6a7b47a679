package history

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parchmint/clausal/errors"
)

// Run is one recorded predict invocation.
type Run struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	CorpusPath string         `json:"corpus_path"`
	Seed       int64          `json:"seed"`
	Known      map[string]int `json:"known_terms"`
}

// Prediction is one emitted term of a recorded run.
type Prediction struct {
	Term        string  `json:"term"`
	Class       int     `json:"class"`
	Probability float64 `json:"probability"`
}

// Store records and lists prediction runs.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewStore creates a store over an open, migrated database.
func NewStore(db *sql.DB, log *zap.SugaredLogger) *Store {
	return &Store{db: db, log: log}
}

// RecordRun persists one predict invocation and its emitted predictions.
// It generates and returns the run id.
func (s *Store) RecordRun(corpusPath string, seed int64, known map[string]int, predictions []Prediction) (string, error) {
	id := uuid.NewString()

	knownJSON, err := json.Marshal(known)
	if err != nil {
		return "", errors.Wrap(err, "encoding known terms")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", errors.Wrap(err, "begin run tx")
	}

	if _, err := tx.Exec(
		`INSERT INTO runs (id, created_at, corpus_path, seed, known_terms) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), corpusPath, seed, string(knownJSON),
	); err != nil {
		tx.Rollback()
		return "", errors.Wrap(err, "insert run")
	}

	for _, p := range predictions {
		if _, err := tx.Exec(
			`INSERT INTO predictions (run_id, term, class, probability) VALUES (?, ?, ?, ?)`,
			id, p.Term, p.Class, p.Probability,
		); err != nil {
			tx.Rollback()
			return "", errors.Wrapf(err, "insert prediction %q", p.Term)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "commit run")
	}

	if s.log != nil {
		s.log.Debugw("Prediction run recorded",
			"run_id", id,
			"predictions", len(predictions),
		)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, corpus_path, seed, known_terms
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var knownJSON string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.CorpusPath, &r.Seed, &knownJSON); err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		if err := json.Unmarshal([]byte(knownJSON), &r.Known); err != nil {
			return nil, errors.Wrapf(err, "decode known terms for run %s", r.ID)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Predictions returns the emitted terms of one run, in term order.
func (s *Store) Predictions(runID string) ([]Prediction, error) {
	rows, err := s.db.Query(
		`SELECT term, class, probability FROM predictions WHERE run_id = ? ORDER BY term`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "query predictions")
	}
	defer rows.Close()

	var preds []Prediction
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(&p.Term, &p.Class, &p.Probability); err != nil {
			return nil, errors.Wrap(err, "scan prediction")
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}
