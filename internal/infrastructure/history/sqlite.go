// Package history keeps an append-only audit log of training runs in a local
// SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS training_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	model_name TEXT NOT NULL,
	rows INTEGER NOT NULL,
	accuracy REAL NOT NULL,
	started_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	saved_by TEXT NOT NULL
)`

// SQLiteRecorder appends run rows to the training_runs table.
type SQLiteRecorder struct {
	db *sql.DB
}

var _ ports.RunRecorder = (*SQLiteRecorder)(nil)

// NewSQLiteRecorder opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// RecordRun inserts one audit row.
func (r *SQLiteRecorder) RecordRun(ctx context.Context, run domain.TrainingRun) error {
	if r.db == nil {
		return nil
	}

	query := sq.Insert("training_runs").
		Columns("model_name", "rows", "accuracy", "started_at", "finished_at", "saved_by").
		Values(run.ModelName, run.Rows, run.Accuracy, run.StartedAt, run.FinishedAt, run.SavedBy)

	if _, err := query.RunWith(r.db).ExecContext(ctx); err != nil {
		return fmt.Errorf("insert training run: %w", err)
	}
	return nil
}

// Runs returns the number of recorded runs for a model name.
func (r *SQLiteRecorder) Runs(ctx context.Context, modelName string) (int, error) {
	query := sq.Select("COUNT(*)").
		From("training_runs").
		Where(sq.Eq{"model_name": modelName})

	var count int
	if err := query.RunWith(r.db).QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, fmt.Errorf("count training runs: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
