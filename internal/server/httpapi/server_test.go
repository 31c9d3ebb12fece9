package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushchouksey/jeclens/internal/common"
	domain "github.com/ayushchouksey/jeclens/internal/facts"
	"github.com/ayushchouksey/jeclens/internal/logging"
	"github.com/ayushchouksey/jeclens/internal/server/auth"
	"github.com/ayushchouksey/jeclens/internal/server/config"
	"github.com/ayushchouksey/jeclens/internal/server/services"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }

type fakeFacts struct {
	requester *auth.Identity
	category  string
	candidate *domain.Candidate
	factID    int64
	metric    domain.Metric

	listResp []domain.Fact
	fact     *domain.Fact
	err      error
}

func (f *fakeFacts) List(ctx context.Context, requester *auth.Identity, category string) ([]domain.Fact, error) {
	f.requester, f.category = requester, category
	return f.listResp, f.err
}

func (f *fakeFacts) Submit(ctx context.Context, requester *auth.Identity, c domain.Candidate) (*domain.Fact, error) {
	f.requester, f.candidate = requester, &c
	return f.fact, f.err
}

func (f *fakeFacts) Vote(ctx context.Context, requester *auth.Identity, factID int64, metric domain.Metric) (*domain.Fact, error) {
	f.requester, f.factID, f.metric = requester, factID, metric
	return f.fact, f.err
}

func (f *fakeFacts) Approve(ctx context.Context, requester *auth.Identity, factID int64) (*domain.Fact, error) {
	f.requester, f.factID = requester, factID
	return f.fact, f.err
}

type fakeSessions struct {
	identity *auth.Identity
	pair     *services.TokenPair
	err      error
}

func (f *fakeSessions) LoginWithGoogle(ctx context.Context, idToken string) (*auth.Identity, *services.TokenPair, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.identity, f.pair, nil
}

func (f *fakeSessions) Refresh(ctx context.Context, refreshToken string) (*auth.Identity, *services.TokenPair, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.identity, f.pair, nil
}

func testServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	return cfg
}

func newTestServer(t *testing.T, facts *fakeFacts, sessions *fakeSessions) *Server {
	t.Helper()
	return NewServer(testServerConfig(), facts, sessions, nopLogger{})
}

func accessToken(t *testing.T, email string, validity time.Duration) string {
	t.Helper()
	token, err := auth.GenerateToken(auth.Identity{Email: email, Name: "Test"}, []byte("test-secret"), validity)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Code
}

func TestPing(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListFacts_Anonymous(t *testing.T) {
	facts := &fakeFacts{listResp: []domain.Fact{{ID: 1, Text: "t"}}}
	s := newTestServer(t, facts, &fakeSessions{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/facts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, facts.requester)
	assert.Equal(t, "all", facts.category)

	var resp factsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Facts, 1)
	assert.EqualValues(t, 1, resp.Facts[0].ID)
}

func TestListFacts_EmptyFeedIsEmptyArray(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/facts?category=civil", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"facts":[]}`, rec.Body.String())
}

func TestListFacts_AuthenticatedIdentityForwarded(t *testing.T) {
	facts := &fakeFacts{}
	s := newTestServer(t, facts, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/facts?category=science", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, facts.requester)
	assert.Equal(t, "student@example.com", facts.requester.Email)
	assert.Equal(t, "science", facts.category)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/facts", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorCode(t, rec))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	token := accessToken(t, "student@example.com", -time.Minute)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/facts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token_expired", errorCode(t, rec))
}

func TestCreateFact_Success(t *testing.T) {
	facts := &fakeFacts{fact: &domain.Fact{ID: 7, Text: "t", Approved: false}}
	s := newTestServer(t, facts, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	body := domain.Candidate{Text: "t", Source: "https://example.com", Category: "civil"}
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts", token, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, facts.candidate)
	assert.Equal(t, "civil", facts.candidate.Category)

	var created domain.Fact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.EqualValues(t, 7, created.ID)
	assert.False(t, created.Approved)
}

func TestCreateFact_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"anonymous", common.ErrAuthenticationRequired, http.StatusUnauthorized, "authentication_required"},
		{"validation", common.ErrValidation, http.StatusBadRequest, "validation"},
		{"quota", common.ErrQuotaExceeded, http.StatusTooManyRequests, "quota_exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeFacts{err: tt.err}, &fakeSessions{})

			body := domain.Candidate{Text: "t", Source: "https://example.com", Category: "civil"}
			rec := doRequest(t, s, http.MethodPost, "/api/v1/facts", "", body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, errorCode(t, rec))
		})
	}
}

func TestVote_Success(t *testing.T) {
	facts := &fakeFacts{fact: &domain.Fact{ID: 42, VotesMindblowing: 6}}
	s := newTestServer(t, facts, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts/42/votes/votesMindblowing", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 42, facts.factID)
	assert.Equal(t, domain.MetricMindblowing, facts.metric)
}

func TestVote_UnknownMetric(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts/42/votes/boring", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", errorCode(t, rec))
}

func TestVote_AlreadyVoted(t *testing.T) {
	s := newTestServer(t, &fakeFacts{err: common.ErrAlreadyVoted}, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts/42/votes/votesInteresting", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_voted", errorCode(t, rec))
}

func TestApprove_Forbidden(t *testing.T) {
	s := newTestServer(t, &fakeFacts{err: common.ErrAuthorizationDenied}, &fakeSessions{})

	token := accessToken(t, "student@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts/7/approve", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", errorCode(t, rec))
}

func TestApprove_Success(t *testing.T) {
	facts := &fakeFacts{fact: &domain.Fact{ID: 7, Approved: true}}
	s := newTestServer(t, facts, &fakeSessions{})

	token := accessToken(t, "approver@example.com", time.Minute)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/facts/7/approve", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Fact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Approved)
}

func TestLoginGoogle_Success(t *testing.T) {
	sessions := &fakeSessions{
		identity: &auth.Identity{Email: "student@example.com"},
		pair:     &services.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	s := newTestServer(t, &fakeFacts{}, sessions)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/google", "", loginRequest{IDToken: "id-token"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, "r", resp.RefreshToken)
}

func TestLoginGoogle_MissingToken(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/google", "", loginRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginGoogle_VerifierRejected(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{err: common.ErrInvalidToken})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/google", "", loginRequest{IDToken: "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorCode(t, rec))
}

func TestRefresh_ExpiredMapsToTokenExpired(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{err: common.ErrRefreshTokenExpired})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/refresh", "", refreshRequest{RefreshToken: "stale"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token_expired", errorCode(t, rec))
}

func TestAuthEndpointsRateLimited(t *testing.T) {
	cfg := testServerConfig()
	cfg.AuthRateEvery = time.Hour
	cfg.AuthRateBurst = 2

	sessions := &fakeSessions{
		identity: &auth.Identity{Email: "student@example.com"},
		pair:     &services.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	s := NewServer(cfg, &fakeFacts{}, sessions, nopLogger{})

	for i := 0; i < 2; i++ {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/google", "", loginRequest{IDToken: "id"})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/google", "", loginRequest{IDToken: "id"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorCode(t, rec))
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t, &fakeFacts{}, &fakeSessions{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Len(t, cats, 10)
}
