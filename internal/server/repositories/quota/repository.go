package quota

import "context"

// Repository tracks daily submission counts per identity. Days are keyed
// "YYYY-MM-DD"; a missing row counts as zero, so a new date naturally
// starts over.
type Repository interface {
	// Increment advances the counter for (email, day) but refuses to pass
	// limit, returning common.ErrQuotaExceeded instead. The increment is
	// the gate: concurrent submissions serialize on the counter row, so
	// the limit holds without a separate read.
	Increment(ctx context.Context, email, day string, limit int) error
}
