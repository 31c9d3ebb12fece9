// Package services contains the application services of the feed server:
// the feed listing with its visibility filter, the submission gate, the
// vote gate, the approval gate, and session handling.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ayushchouksey/jeclens/internal/categories"
	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/dbx"
	domain "github.com/ayushchouksey/jeclens/internal/facts"
	"github.com/ayushchouksey/jeclens/internal/logging"
	"github.com/ayushchouksey/jeclens/internal/server/auth"
	"github.com/ayushchouksey/jeclens/internal/server/config"
	factsrepo "github.com/ayushchouksey/jeclens/internal/server/repositories/facts"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/repomanager"
)

// FactsService enforces all feed rules on the server side. The client
// mirrors the cheap checks for fast feedback, but this service is the
// authority: visibility, quota, vote deduplication, and approval rights
// are decided here regardless of what the client claims.
type FactsService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	approverEmail string
	insiderEmail  string
	dailyLimit    int
	feedLimit     int
	logger        logging.Logger

	// now is a test seam for quota day bookkeeping.
	now func() time.Time
}

func NewFactsService(db *sql.DB, repos repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *FactsService {
	return &FactsService{
		db:            db,
		repos:         repos,
		approverEmail: cfg.ApproverEmail,
		insiderEmail:  cfg.InsiderEmail,
		dailyLimit:    cfg.DailyPostLimit,
		feedLimit:     cfg.FeedLimit,
		logger:        logger.With("module", "facts_service"),
		now:           time.Now,
	}
}

// List returns the feed visible to the requester, ordered by
// votesInteresting descending and capped at the configured limit.
// Anonymous requesters are allowed and see only approved facts; the
// insider identity sees everything. The visibility predicate is part of
// the query, not a post-filter.
func (s *FactsService) List(ctx context.Context, requester *auth.Identity, category string) ([]domain.Fact, error) {

	if category == categories.All {
		category = ""
	}
	if category != "" && !categories.IsValid(category) {
		return nil, fmt.Errorf("%w: unknown category %q", common.ErrValidation, category)
	}

	onlyApproved := requester == nil || requester.Email != s.insiderEmail

	list, err := s.repos.Facts(s.db).List(ctx, factsrepo.Filter{
		OnlyApproved: onlyApproved,
		Category:     category,
		Limit:        s.feedLimit,
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Submit runs the submission gate: authentication, field validation, and
// the daily quota, in that order, then inserts the fact with
// approved=false. The guarded quota increment and the insert share one
// transaction; the increment refuses to pass the limit while holding the
// counter row lock, so concurrent submissions serialize and a rejected
// attempt rolls back without leaving a fact behind.
func (s *FactsService) Submit(ctx context.Context, requester *auth.Identity, c domain.Candidate) (*domain.Fact, error) {

	if requester == nil {
		return nil, common.ErrAuthenticationRequired
	}

	if err := domain.ValidateCandidate(c); err != nil {
		return nil, err
	}

	day := s.now().UTC().Format(common.DateFormat)

	var created *domain.Fact
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Quota(tx).Increment(ctx, requester.Email, day, s.dailyLimit); err != nil {
			return err
		}

		var err error
		created, err = s.repos.Facts(tx).Create(ctx, c, requester.Email)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "fact submitted", "id", created.ID, "category", created.Category)
	return created, nil
}

// Vote runs the vote gate for one metric of one fact. Each (identity,
// fact, metric) triple can succeed at most once, forever. The dedup check,
// the increment, and the marker insert share one transaction; the returned
// fact is the post-increment server row.
func (s *FactsService) Vote(ctx context.Context, requester *auth.Identity, factID int64, metric domain.Metric) (*domain.Fact, error) {

	if requester == nil {
		return nil, common.ErrAuthenticationRequired
	}

	var updated *domain.Fact
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		voted, err := s.repos.Votes(tx).Exists(ctx, requester.Email, factID, metric)
		if err != nil {
			return err
		}
		if voted {
			return common.ErrAlreadyVoted
		}

		updated, err = s.repos.Facts(tx).IncrementVote(ctx, factID, metric)
		if err != nil {
			return err
		}

		return s.repos.Votes(tx).Create(ctx, requester.Email, factID, metric)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Approve sets approved=true on a fact. Only the configured approver
// identity may call it; everyone else gets a checked rejection, not a
// hidden control.
func (s *FactsService) Approve(ctx context.Context, requester *auth.Identity, factID int64) (*domain.Fact, error) {

	if requester == nil {
		return nil, common.ErrAuthenticationRequired
	}
	if requester.Email != s.approverEmail {
		return nil, common.ErrAuthorizationDenied
	}

	updated, err := s.repos.Facts(s.db).Approve(ctx, factID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "fact approved", "id", factID)
	return updated, nil
}
