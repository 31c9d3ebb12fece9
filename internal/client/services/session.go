// Package services contains the application services of the CLI: session
// handling, the feed controller, the submission gate, and the vote gate.
package services

import (
	"context"
	"sync"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/session"
)

// session repository keys
const (
	keyEmail        = "email"
	keyName         = "name"
	keyPicture      = "picture"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// SessionService owns the login state of the CLI. The session is an
// explicit object: commands receive it from here instead of reading global
// state, and a nil session simply means logged out.
type SessionService struct {
	api  api.Client
	repo session.Repository

	mu      sync.Mutex
	current *models.Session
}

func NewSessionService(apiClient api.Client, repo session.Repository) *SessionService {
	s := &SessionService{api: apiClient, repo: repo}

	// persist rotated tokens so a restart does not lose the session
	apiClient.OnSessionRefresh(func(sess *models.Session) {
		s.mu.Lock()
		s.current = sess
		s.mu.Unlock()
		_ = s.persist(context.Background(), sess)
	})

	return s
}

// Current returns the active session, or nil when logged out.
func (s *SessionService) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login exchanges a Google ID token for a server session and persists it.
func (s *SessionService) Login(ctx context.Context, idToken string) (*models.Session, error) {

	sess, err := s.api.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Restore loads a previously persisted session from the local database and
// installs it into the API client. Returns nil without error when there is
// nothing to restore.
func (s *SessionService) Restore(ctx context.Context) (*models.Session, error) {

	access, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, nil
	}

	sess := &models.Session{AccessToken: access}
	if sess.RefreshToken, err = s.repo.Get(ctx, keyRefreshToken); err != nil {
		return nil, err
	}
	if sess.Email, err = s.repo.Get(ctx, keyEmail); err != nil {
		return nil, err
	}
	if sess.Name, err = s.repo.Get(ctx, keyName); err != nil {
		return nil, err
	}
	if sess.Picture, err = s.repo.Get(ctx, keyPicture); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	s.api.SetSession(sess)

	return sess, nil
}

// Logout drops the session locally. Vote markers and the post counter stay:
// they are device bookkeeping, not session state.
func (s *SessionService) Logout(ctx context.Context) error {

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.api.SetSession(nil)

	return s.repo.Clear(ctx)
}

// Ping probes server reachability.
func (s *SessionService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}

func (s *SessionService) persist(ctx context.Context, sess *models.Session) error {
	pairs := map[string]string{
		keyEmail:        sess.Email,
		keyName:         sess.Name,
		keyPicture:      sess.Picture,
		keyAccessToken:  sess.AccessToken,
		keyRefreshToken: sess.RefreshToken,
	}
	for key, value := range pairs {
		if err := s.repo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
