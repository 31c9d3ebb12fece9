package votemarks

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/ayushchouksey/jeclens/internal/facts"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE vote_markers (
		fact_id INTEGER NOT NULL,
		metric TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (fact_id, metric))`)
	require.NoError(t, err)

	return NewSQLiteRepository(db)
}

func TestExists_EmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Exists(context.Background(), 42, facts.MetricInteresting)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMarkThenExists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Mark(ctx, 42, facts.MetricInteresting))

	got, err := repo.Exists(ctx, 42, facts.MetricInteresting)
	require.NoError(t, err)
	assert.True(t, got)

	// other metrics of the same fact stay unmarked
	got, err = repo.Exists(ctx, 42, facts.MetricFalse)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMark_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Mark(ctx, 42, facts.MetricMindblowing))
	require.NoError(t, repo.Mark(ctx, 42, facts.MetricMindblowing))

	got, err := repo.Exists(ctx, 42, facts.MetricMindblowing)
	require.NoError(t, err)
	assert.True(t, got)
}
