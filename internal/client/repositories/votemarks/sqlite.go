package votemarks

import (
	"context"
	"fmt"

	"github.com/ayushchouksey/jeclens/internal/dbx"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Exists(ctx context.Context, factID int64, metric facts.Metric) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM vote_markers WHERE fact_id = ? AND metric = ?)`,
		factID, string(metric)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vote marker: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Mark(ctx context.Context, factID int64, metric facts.Metric) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vote_markers (fact_id, metric) VALUES (?, ?)
		ON CONFLICT(fact_id, metric) DO NOTHING
	`, factID, string(metric))
	if err != nil {
		return fmt.Errorf("failed to set vote marker: %w", err)
	}
	return nil
}
