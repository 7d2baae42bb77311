package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) SaveAuthor(ctx context.Context, a Author) error {
	const sql = `
		INSERT INTO authors (id, name, personal_name, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			personal_name = EXCLUDED.personal_name,
			updated_at = now()`

	if _, err := r.db.Exec(ctx, sql, a.ID, a.Name, a.PersonalName); err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) FindAuthorByID(ctx context.Context, id string) (Author, error) {
	const query = `SELECT id, name, personal_name FROM authors WHERE id = $1`

	var a Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.PersonalName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, fmt.Errorf("author %s: %w", id, ErrNotFound)
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) SaveWork(ctx context.Context, w Work) error {
	const sql = `
		INSERT INTO works (id, title, description, published_date, cover_ids, author_ids, author_names, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			published_date = EXCLUDED.published_date,
			cover_ids = EXCLUDED.cover_ids,
			author_ids = EXCLUDED.author_ids,
			author_names = EXCLUDED.author_names,
			updated_at = now()`

	_, err := r.db.Exec(ctx, sql, w.ID, w.Title, w.Description, w.PublishedDate, nonNil(w.CoverIDs), nonNil(w.AuthorIDs), nonNil(w.AuthorNames))
	if err != nil {
		return fmt.Errorf("save work: %w", err)
	}
	return nil
}

func (r *PostgresRepo) FindWorkByID(ctx context.Context, id string) (Work, error) {
	const query = `
		SELECT id, title, description, published_date, cover_ids, author_ids, author_names
		FROM works
		WHERE id = $1`

	var (
		w         Work
		published *time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Title, &w.Description, &published, &w.CoverIDs, &w.AuthorIDs, &w.AuthorNames,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Work{}, fmt.Errorf("work %s: %w", id, ErrNotFound)
		}
		return Work{}, err
	}
	if published != nil {
		d := published.UTC()
		w.PublishedDate = &d
	}
	return w, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
