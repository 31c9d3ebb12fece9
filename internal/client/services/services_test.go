package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/quota"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/session"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/votemarks"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// fakeAPI is a scriptable api.Client.
type fakeAPI struct {
	session   *models.Session
	onRefresh func(*models.Session)

	loginResp *models.Session
	loginErr  error

	listResp  []facts.Fact
	listErr   error
	listCalls int

	createResp *facts.Fact
	createErr  error
	created    []facts.Candidate

	voteResp  *facts.Fact
	voteErr   error
	voteCalls int

	approveResp *facts.Fact
	approveErr  error

	pingErr error
}

func (f *fakeAPI) LoginWithGoogle(ctx context.Context, idToken string) (*models.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.session = f.loginResp
	return f.loginResp, nil
}

func (f *fakeAPI) ListFacts(ctx context.Context, category string) ([]facts.Fact, error) {
	f.listCalls++
	return f.listResp, f.listErr
}

func (f *fakeAPI) CreateFact(ctx context.Context, c facts.Candidate) (*facts.Fact, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, c)
	return f.createResp, nil
}

func (f *fakeAPI) Vote(ctx context.Context, factID int64, metric facts.Metric) (*facts.Fact, error) {
	f.voteCalls++
	return f.voteResp, f.voteErr
}

func (f *fakeAPI) Approve(ctx context.Context, factID int64) (*facts.Fact, error) {
	return f.approveResp, f.approveErr
}

func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeAPI) SetSession(session *models.Session) { f.session = session }

func (f *fakeAPI) OnSessionRefresh(fn func(session *models.Session)) { f.onRefresh = fn }

func testLocalDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE session (key TEXT PRIMARY KEY, value TEXT NOT NULL);
		CREATE TABLE vote_markers (
			fact_id INTEGER NOT NULL,
			metric TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (fact_id, metric));
		CREATE TABLE post_counts (day TEXT PRIMARY KEY, count INTEGER NOT NULL DEFAULT 0);
	`)
	require.NoError(t, err)

	return db
}

func testSessionRepo(t *testing.T) *session.SQLiteRepository {
	return session.NewSQLiteRepository(testLocalDB(t))
}

func testVoteMarksRepo(t *testing.T) *votemarks.SQLiteRepository {
	return votemarks.NewSQLiteRepository(testLocalDB(t))
}

func testQuotaRepo(t *testing.T) *quota.SQLiteRepository {
	return quota.NewSQLiteRepository(testLocalDB(t))
}
