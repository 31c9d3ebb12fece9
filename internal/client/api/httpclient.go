package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// HTTPClient talks JSON to the feed server. When a call comes back with the
// token_expired code it refreshes the token pair once and replays the call;
// callers never see the expiry of a refreshable session.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	mu        sync.Mutex
	session   *models.Session
	onRefresh func(session *models.Session)
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) SetSession(session *models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
}

func (c *HTTPClient) OnSessionRefresh(fn func(session *models.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefresh = fn
}

func (c *HTTPClient) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", ""
	}
	return c.session.AccessToken, c.session.RefreshToken
}

type errorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type userPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type sessionPayload struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         userPayload `json:"user"`
}

type factsPayload struct {
	Facts []facts.Fact `json:"facts"`
}

func (p *sessionPayload) toSession() *models.Session {
	return &models.Session{
		Email:        p.User.Email,
		Name:         p.User.Name,
		Picture:      p.User.Picture,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
	}
}

// do performs one round trip and decodes the response into out (when out is
// non-nil). A non-2xx answer is returned as a mapped sentinel error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if access, _ := c.tokens(); access != "" {
		req.Header.Set(common.AccessTokenHeaderName, access)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusMultipleChoices {
		if out != nil {
			return json.NewDecoder(resp.Body).Decode(out)
		}
		return nil
	}

	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return mapError(resp.StatusCode, payload)
}

// call is do plus the refresh-and-replay step for expired access tokens.
func (c *HTTPClient) call(ctx context.Context, method, path string, body, out any) error {

	err := c.do(ctx, method, path, body, out)
	if err == nil || !errors.Is(err, common.ErrTokenExpired) {
		return err
	}

	_, refresh := c.tokens()
	if refresh == "" {
		return err
	}

	if err := c.refreshSession(ctx, refresh); err != nil {
		return err
	}

	return c.do(ctx, method, path, body, out)
}

func (c *HTTPClient) refreshSession(ctx context.Context, refreshToken string) error {

	var payload sessionPayload
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", body, &payload); err != nil {
		return err
	}

	session := payload.toSession()

	c.mu.Lock()
	c.session = session
	fn := c.onRefresh
	c.mu.Unlock()

	if fn != nil {
		fn(session)
	}
	return nil
}

func mapError(status int, payload errorPayload) error {

	switch payload.Code {
	case "token_expired":
		return common.ErrTokenExpired
	case "invalid_token":
		return common.ErrInvalidToken
	case "authentication_required":
		return common.ErrAuthenticationRequired
	case "forbidden":
		return common.ErrAuthorizationDenied
	case "validation":
		return fmt.Errorf("%w: %s", common.ErrValidation, payload.Error)
	case "quota_exceeded":
		return common.ErrQuotaExceeded
	case "already_voted":
		return common.ErrAlreadyVoted
	case "not_found":
		return common.ErrNotFound
	case "rate_limited":
		return fmt.Errorf("%w: rate limited", common.ErrUnavailable)
	}

	return fmt.Errorf("%w: server returned status %d", common.ErrInternal, status)
}

func (c *HTTPClient) LoginWithGoogle(ctx context.Context, idToken string) (*models.Session, error) {

	var payload sessionPayload
	body := map[string]string{"idToken": idToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/google", body, &payload); err != nil {
		return nil, err
	}

	session := payload.toSession()
	c.SetSession(session)
	return session, nil
}

func (c *HTTPClient) ListFacts(ctx context.Context, category string) ([]facts.Fact, error) {

	path := "/api/v1/facts"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var payload factsPayload
	if err := c.call(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Facts, nil
}

func (c *HTTPClient) CreateFact(ctx context.Context, candidate facts.Candidate) (*facts.Fact, error) {

	var created facts.Fact
	if err := c.call(ctx, http.MethodPost, "/api/v1/facts", candidate, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Vote(ctx context.Context, factID int64, metric facts.Metric) (*facts.Fact, error) {

	path := fmt.Sprintf("/api/v1/facts/%d/votes/%s", factID, metric)

	var updated facts.Fact
	if err := c.call(ctx, http.MethodPost, path, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Approve(ctx context.Context, factID int64) (*facts.Fact, error) {

	path := fmt.Sprintf("/api/v1/facts/%d/approve", factID)

	var updated facts.Fact
	if err := c.call(ctx, http.MethodPost, path, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/ping", nil, nil)
}
