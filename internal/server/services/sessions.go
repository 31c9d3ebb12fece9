package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/dbx"
	"github.com/ayushchouksey/jeclens/internal/logging"
	"github.com/ayushchouksey/jeclens/internal/server/auth"
	"github.com/ayushchouksey/jeclens/internal/server/config"
	"github.com/ayushchouksey/jeclens/internal/server/models"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/repomanager"
)

// TokenPair is one issued access/refresh token couple.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionsService exchanges verified Google ID tokens for first-party
// session tokens and rotates refresh tokens.
type SessionsService struct {
	db              *sql.DB
	repos           repomanager.RepositoryManager
	verifier        auth.GoogleVerifier
	jwtSecret       []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
	logger          logging.Logger

	now func() time.Time
}

func NewSessionsService(db *sql.DB, repos repomanager.RepositoryManager, verifier auth.GoogleVerifier, cfg *config.Config, logger logging.Logger) *SessionsService {
	return &SessionsService{
		db:              db,
		repos:           repos,
		verifier:        verifier,
		jwtSecret:       []byte(cfg.SecretKey),
		accessValidity:  cfg.AccessTokenValidityDuration,
		refreshValidity: cfg.RefreshTokenValidityDuration,
		logger:          logger.With("module", "sessions_service"),
		now:             time.Now,
	}
}

// LoginWithGoogle verifies the Google ID token and issues a session.
// The identity in the session is whatever Google asserts; the server keeps
// no user table of its own.
func (s *SessionsService) LoginWithGoogle(ctx context.Context, idToken string) (*auth.Identity, *TokenPair, error) {

	id, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, s.db, *id)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info(ctx, "session issued", "email", id.Email)
	return id, pair, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a
// new pair is issued. Expired or unknown tokens end the session.
func (s *SessionsService) Refresh(ctx context.Context, refreshToken string) (*auth.Identity, *TokenPair, error) {

	row, err := s.repos.RefreshTokens(s.db).Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrInvalidToken
		}
		return nil, nil, err
	}

	if s.now().After(row.Expires) {
		_ = s.repos.RefreshTokens(s.db).Delete(ctx, refreshToken)
		return nil, nil, common.ErrRefreshTokenExpired
	}

	id := auth.Identity{Email: row.Email, Name: row.Name, Picture: row.Picture}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return err
		}
		pair, err = s.issueTokens(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return &id, pair, nil
}

func (s *SessionsService) issueTokens(ctx context.Context, db dbx.DBTX, id auth.Identity) (*TokenPair, error) {

	access, err := auth.GenerateToken(id, s.jwtSecret, s.accessValidity)
	if err != nil {
		return nil, err
	}

	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}

	row := &models.RefreshToken{
		ID:      uuid.NewString(),
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
		Token:   refresh,
		Expires: s.now().Add(s.refreshValidity),
	}
	if err := s.repos.RefreshTokens(db).Create(ctx, row); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
