package votes

import (
	"context"

	domain "github.com/ayushchouksey/jeclens/internal/facts"
)

// Repository records which identity already voted which metric on which
// fact. Rows are insert-only: there is no un-vote path.
type Repository interface {
	Exists(ctx context.Context, email string, factID int64, metric domain.Metric) (bool, error)
	Create(ctx context.Context, email string, factID int64, metric domain.Metric) error
}
