// Package api is the HTTP client for the feed server.
package api

import (
	"context"

	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// Client is the remote API surface the client services depend on.
type Client interface {
	LoginWithGoogle(ctx context.Context, idToken string) (*models.Session, error)
	ListFacts(ctx context.Context, category string) ([]facts.Fact, error)
	CreateFact(ctx context.Context, c facts.Candidate) (*facts.Fact, error)
	Vote(ctx context.Context, factID int64, metric facts.Metric) (*facts.Fact, error)
	Approve(ctx context.Context, factID int64) (*facts.Fact, error)
	Ping(ctx context.Context) error

	// SetSession installs the token pair used for authenticated calls;
	// a nil session makes subsequent calls anonymous.
	SetSession(session *models.Session)
	// OnSessionRefresh registers a callback invoked after a transparent
	// token refresh, so the caller can persist the rotated pair.
	OnSessionRefresh(fn func(session *models.Session))
}
