// Package votes implements identity-keyed vote deduplication storage.
package votes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/dbx"
	domain "github.com/ayushchouksey/jeclens/internal/facts"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, email string, factID int64, metric domain.Metric) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM votes WHERE email = $1 AND fact_id = $2 AND metric = $3)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, factID, string(metric)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Create records one vote marker. A primary key violation means a racing
// vote on the same (email, fact, metric) won; that is the dedup rule
// firing, not a database failure.
func (r *PostgresRepository) Create(ctx context.Context, email string, factID int64, metric domain.Metric) error {

	query := `INSERT INTO votes (email, fact_id, metric) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, email, factID, string(metric)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyVoted
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
