// Package facts implements the storage layer for the facts table.
package facts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/dbx"
	domain "github.com/ayushchouksey/jeclens/internal/facts"
)

const factColumns = `id, text, source, category, votes_interesting, votes_mindblowing, votes_false, approved, created_by, created_at`

// metricColumns whitelists the updatable vote columns. Metric values come
// through domain.ParseMetric, so a miss here is a programming error.
var metricColumns = map[domain.Metric]string{
	domain.MetricInteresting: "votes_interesting",
	domain.MetricMindblowing: "votes_mindblowing",
	domain.MetricFalse:       "votes_false",
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFact(row interface{ Scan(dest ...any) error }) (*domain.Fact, error) {
	f := &domain.Fact{}
	err := row.Scan(&f.ID, &f.Text, &f.Source, &f.Category,
		&f.VotesInteresting, &f.VotesMindblowing, &f.VotesFalse,
		&f.Approved, &f.CreatedBy, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]domain.Fact, error) {

	query := `SELECT ` + factColumns + ` FROM facts`
	args := []any{}

	where := ""
	if filter.OnlyApproved {
		where = ` WHERE approved = TRUE`
	}
	if filter.Category != "" {
		if where == "" {
			where = ` WHERE`
		} else {
			where += ` AND`
		}
		args = append(args, filter.Category)
		where += ` category = $` + strconv.Itoa(len(args))
	}
	query += where + ` ORDER BY votes_interesting DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []domain.Fact
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c domain.Candidate, createdBy string) (*domain.Fact, error) {

	// approved is never set on insert: submissions always start unapproved
	query := `INSERT INTO facts (text, source, category, created_by)
	 VALUES ($1, $2, $3, $4)
	 RETURNING ` + factColumns

	f, err := scanFact(r.db.QueryRowContext(ctx, query, c.Text, c.Source, c.Category, createdBy))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Fact, error) {

	query := `SELECT ` + factColumns + ` FROM facts WHERE id = $1`

	f, err := scanFact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) IncrementVote(ctx context.Context, id int64, metric domain.Metric) (*domain.Fact, error) {

	col, ok := metricColumns[metric]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vote metric %q", common.ErrValidation, metric)
	}

	query := `UPDATE facts SET ` + col + ` = ` + col + ` + 1 WHERE id = $1 RETURNING ` + factColumns

	f, err := scanFact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Approve(ctx context.Context, id int64) (*domain.Fact, error) {

	query := `UPDATE facts SET approved = TRUE WHERE id = $1 RETURNING ` + factColumns

	f, err := scanFact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}
