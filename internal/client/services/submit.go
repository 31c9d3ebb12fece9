package services

import (
	"context"
	"time"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/quota"
	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// DailyPostLimit is the device-side cap on successful submissions per
// calendar day. The server enforces its own identity-keyed quota; this one
// exists so the rejection is instant and costs no round trip.
const DailyPostLimit = 5

// SubmissionGate runs the client-side checks of a fact submission in a
// fixed order: authentication, field validation, local daily quota. Only a
// candidate that passes all three is sent to the server, and only a
// confirmed create advances the local counter.
type SubmissionGate struct {
	api   api.Client
	quota quota.Repository
	limit int

	// now is a test seam for day bookkeeping.
	now func() time.Time
}

func NewSubmissionGate(apiClient api.Client, quotaRepo quota.Repository) *SubmissionGate {
	return &SubmissionGate{api: apiClient, quota: quotaRepo, limit: DailyPostLimit, now: time.Now}
}

func (g *SubmissionGate) Submit(ctx context.Context, session *models.Session, c facts.Candidate) (*facts.Fact, error) {

	if session == nil {
		return nil, common.ErrAuthenticationRequired
	}

	if err := facts.ValidateCandidate(c); err != nil {
		return nil, err
	}

	day := g.now().UTC().Format(common.DateFormat)

	count, err := g.quota.CountForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if count >= g.limit {
		return nil, common.ErrQuotaExceeded
	}

	created, err := g.api.CreateFact(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := g.quota.Increment(ctx, day); err != nil {
		return nil, err
	}

	return created, nil
}
