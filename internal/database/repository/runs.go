package repository

import (
	"context"
	"database/sql"
	"time"
)

// RunRepo handles run history rows.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO runs(
	 id, started_at, duration_ms, task_count, batch_size,
	 heap_bytes, goroutines, gc_cycles, integrated_code, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`,
		run.ID, run.StartedAt, run.Duration.Milliseconds(), run.TaskCount, run.BatchSize,
		int64(run.HeapBytes), run.Goroutines, run.GCCycles, run.IntegratedCode)
	return err
}

// List returns runs newest first, at most limit rows. limit <= 0 means all.
func (r *RunRepo) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, started_at, duration_ms, task_count, batch_size,
	 heap_bytes, goroutines, gc_cycles, integrated_code, created_at
	 FROM runs ORDER BY started_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Latest returns the most recent run, or nil when history is empty.
func (r *RunRepo) Latest(ctx context.Context) (*Run, error) {
	runs, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// Count returns the number of recorded runs.
func (r *RunRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var durationMS int64
	var heapBytes int64
	if err := rows.Scan(&run.ID, &run.StartedAt, &durationMS, &run.TaskCount, &run.BatchSize,
		&heapBytes, &run.Goroutines, &run.GCCycles, &run.IntegratedCode, &run.CreatedAt); err != nil {
		return Run{}, err
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.HeapBytes = uint64(heapBytes)
	return run, nil
}
