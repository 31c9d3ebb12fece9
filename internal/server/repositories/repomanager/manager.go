// Package repomanager wires repository implementations to a database and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ayushchouksey/jeclens/internal/dbx"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/facts"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/quota"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/refreshtokens"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/votes"
)

// RepositoryManager hands out repositories bound to a DBTX, so a service
// can use the same repository code inside and outside a transaction.
type RepositoryManager interface {
	Facts(db dbx.DBTX) facts.Repository
	Votes(db dbx.DBTX) votes.Repository
	Quota(db dbx.DBTX) quota.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
