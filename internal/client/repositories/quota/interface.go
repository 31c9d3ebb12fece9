// Package quota keeps the per-day submission counter on this device. Like
// the vote markers it is device-scoped and survives logout.
package quota

import (
	"context"
)

type Repository interface {
	CountForDay(ctx context.Context, day string) (int, error)
	Increment(ctx context.Context, day string) error
}
