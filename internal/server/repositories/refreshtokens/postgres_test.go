package refreshtokens

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	expires := time.Now().Add(720 * time.Hour)

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\s*\(id,\s*email,\s*name,\s*picture,\s*token,\s*expires\)\s+VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	mock.ExpectExec(q).
		WithArgs("row-1", "a@b.c", "Name", "pic", "tok", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.RefreshToken{
		ID: "row-1", Email: "a@b.c", Name: "Name", Picture: "pic", Token: "tok", Expires: expires,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	expires := time.Now().Add(time.Hour)
	created := time.Now().Add(-time.Hour)

	q := `(?s)^SELECT\s+id,\s*email,\s*name,\s*picture,\s*token,\s*expires,\s*created_at\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "name", "picture", "token", "expires", "created_at"}).
			AddRow("row-1", "a@b.c", "Name", "pic", "tok", expires, created))

	got, err := repo.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, "tok", got.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`
	mock.ExpectExec(q).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "tok"))
	require.NoError(t, mock.ExpectationsWereMet())
}
