package ingest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository records ingest runs. Implementations must not fail the load;
// the driver only logs their errors.
type Repository interface {
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) error {
	const sql = `
		INSERT INTO ingest_runs (id, phase, dump_path, line_limit, dry_run, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sql, run.ID, run.Phase, run.DumpPath, run.LineLimit, run.DryRun, run.Status, run.StartedAt)
	return err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE ingest_runs SET
			finished_at = $1,
			status = $2,
			lines_read = $3,
			persisted = $4,
			parsed = $5,
			skipped = $6,
			dropped = $7,
			failed = $8,
			error = $9
		WHERE id = $10`

	_, err := r.db.Exec(ctx, sql, run.FinishedAt, run.Status, run.LinesRead, run.Persisted, run.Parsed, run.Skipped, run.Dropped, run.Failed, run.Error, run.ID)
	return err
}

// NopRepository discards run records. Used by backends without a runs table.
type NopRepository struct{}

func (NopRepository) CreateRun(context.Context, *Run) error { return nil }
func (NopRepository) UpdateRun(context.Context, *Run) error { return nil }
