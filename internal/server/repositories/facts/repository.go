package facts

import (
	"context"

	domain "github.com/ayushchouksey/jeclens/internal/facts"
)

// Filter narrows a feed listing. Category == "" (or "all" upstream) means
// no category filter; OnlyApproved hides unapproved rows from everyone but
// the insider identity.
type Filter struct {
	OnlyApproved bool
	Category     string
	Limit        int
}

// Repository describes storage operations for facts. Vote counters only
// ever grow and facts are never deleted.
type Repository interface {
	// List returns facts matching the filter, ordered by votes_interesting
	// descending.
	List(ctx context.Context, f Filter) ([]domain.Fact, error)

	// Create inserts a new fact. The approved flag is always stored false;
	// the database assigns the id.
	Create(ctx context.Context, c domain.Candidate, createdBy string) (*domain.Fact, error)

	// GetByID returns a single fact.
	GetByID(ctx context.Context, id int64) (*domain.Fact, error)

	// IncrementVote adds one to the given metric column and returns the
	// updated row.
	IncrementVote(ctx context.Context, id int64, metric domain.Metric) (*domain.Fact, error)

	// Approve sets approved=true and returns the updated row.
	Approve(ctx context.Context, id int64) (*domain.Fact, error)
}
