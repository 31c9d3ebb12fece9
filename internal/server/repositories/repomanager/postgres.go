package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ayushchouksey/jeclens/internal/dbx"
	"github.com/ayushchouksey/jeclens/internal/server/migrations"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/facts"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/quota"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/refreshtokens"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/votes"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Facts(db dbx.DBTX) facts.Repository {
	return facts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Votes(db dbx.DBTX) votes.Repository {
	return votes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Quota(db dbx.DBTX) quota.Repository {
	return quota.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
