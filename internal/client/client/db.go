// Package client owns the local SQLite database of the CLI: opening it,
// migrating it, and handing out the repositories bound to it.
package client

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/ayushchouksey/jeclens/internal/client/migrations"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/quota"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/session"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/votemarks"
)

type Repositories struct {
	Session   session.Repository
	VoteMarks votemarks.Repository
	Quota     quota.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the local database at dsn, applies
// migrations, and returns the handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Session:   session.NewSQLiteRepository(db),
		VoteMarks: votemarks.NewSQLiteRepository(db),
		Quota:     quota.NewSQLiteRepository(db),
	}
}
