package quota

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ayushchouksey/jeclens/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CountForDay returns the counter for the given day; a day with no row
// counts as zero.
func (r *SQLiteRepository) CountForDay(ctx context.Context, day string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count FROM post_counts WHERE day = ?`, day).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) Increment(ctx context.Context, day string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO post_counts (day, count) VALUES (?, 1)
		ON CONFLICT(day) DO UPDATE SET count = count + 1
	`, day)
	if err != nil {
		return fmt.Errorf("failed to increment post count: %w", err)
	}
	return nil
}
