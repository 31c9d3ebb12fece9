// Package votemarks records which (fact, metric) pairs this device already
// voted on. Markers survive logout: the gate is per device, not per session.
package votemarks

import (
	"context"

	"github.com/ayushchouksey/jeclens/internal/facts"
)

type Repository interface {
	Exists(ctx context.Context, factID int64, metric facts.Metric) (bool, error)
	Mark(ctx context.Context, factID int64, metric facts.Metric) error
}
