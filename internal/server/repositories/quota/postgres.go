// Package quota implements identity-keyed daily posting counters.
package quota

import (
	"context"
	"fmt"

	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Increment upserts the counter for (email, day), guarded so it never
// exceeds limit. The conditional DO UPDATE re-reads the committed count
// under the row lock, so two racing submissions cannot both land as the
// limit-th of the day; the loser affects zero rows and is rejected.
func (r *PostgresRepository) Increment(ctx context.Context, email, day string, limit int) error {

	// the insert path starts at 1, which only fits a positive limit
	if limit < 1 {
		return common.ErrQuotaExceeded
	}

	query := `INSERT INTO post_quota (email, day, count) VALUES ($1, $2, 1)
	 ON CONFLICT (email, day) DO UPDATE SET count = post_quota.count + 1
	 WHERE post_quota.count < $3`

	res, err := r.db.ExecContext(ctx, query, email, day, limit)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrQuotaExceeded
	}
	return nil
}
