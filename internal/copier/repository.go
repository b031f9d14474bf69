package copier

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// execer is satisfied by *pgxpool.Pool.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Repository appends records to a PostgreSQL table with the columns
// id uuid primary key, name text, "timestamp" bigint, size_mb numeric, found boolean.
type Repository struct {
	db    execer
	query string
}

// NewRepository builds a record repository writing to table, which may be
// schema qualified ("archive.file_metadata").
func NewRepository(db execer, table string) *Repository {
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	return &Repository{
		db: db,
		query: fmt.Sprintf(`
INSERT INTO %s (id, name, "timestamp", size_mb, found)
VALUES ($1, $2, $3, $4, $5);`, ident),
	}
}

// Put inserts one record.
func (r *Repository) Put(ctx context.Context, rec Record) error {
	if _, err := r.db.Exec(ctx, r.query, rec.ID, rec.Name, rec.Timestamp, rec.SizeMB, rec.Found); err != nil {
		return fmt.Errorf("insert file metadata: %w", err)
	}
	return nil
}
