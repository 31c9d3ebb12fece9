package services

import (
	"context"
	"errors"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/client/models"
	"github.com/ayushchouksey/jeclens/internal/client/repositories/votemarks"
	"github.com/ayushchouksey/jeclens/internal/common"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// VoteGate guards voting on this device: a (fact, metric) pair that is
// already marked locally is rejected before any network call. Markers are
// written only after the server confirms the vote, and also when the server
// reports the pair as already voted, so the next attempt fails fast.
type VoteGate struct {
	api   api.Client
	marks votemarks.Repository
}

func NewVoteGate(apiClient api.Client, marks votemarks.Repository) *VoteGate {
	return &VoteGate{api: apiClient, marks: marks}
}

func (g *VoteGate) Vote(ctx context.Context, session *models.Session, factID int64, metric facts.Metric) (*facts.Fact, error) {

	if session == nil {
		return nil, common.ErrAuthenticationRequired
	}

	voted, err := g.marks.Exists(ctx, factID, metric)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, common.ErrAlreadyVoted
	}

	updated, err := g.api.Vote(ctx, factID, metric)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyVoted) {
			// the server knows this identity voted elsewhere; remember it here
			_ = g.marks.Mark(ctx, factID, metric)
		}
		return nil, err
	}

	if err := g.marks.Mark(ctx, factID, metric); err != nil {
		return nil, err
	}

	return updated, nil
}
