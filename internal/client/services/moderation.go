package services

import (
	"context"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// Moderation forwards approval requests. Whether the identity may approve
// is the server's decision; the client only requires a login so the request
// can carry a token at all.
type Moderation struct {
	api api.Client
}

func NewModeration(apiClient api.Client) *Moderation {
	return &Moderation{api: apiClient}
}

func (m *Moderation) Approve(ctx context.Context, session *models.Session, factID int64) (*facts.Fact, error) {
	if session == nil {
		return nil, common.ErrAuthenticationRequired
	}
	return m.api.Approve(ctx, factID)
}
