// Package facts defines the fact model shared by the client and the server,
// the vote metric names, and the submission validation rules.
package facts

import "time"

// Fact is one user-submitted news entry. The JSON field names follow the
// columns of the facts table.
type Fact struct {
	ID               int64     `json:"id"`
	Text             string    `json:"text"`
	Source           string    `json:"source"`
	Category         string    `json:"category"`
	VotesInteresting int32     `json:"votesInteresting"`
	VotesMindblowing int32     `json:"votesMindblowing"`
	VotesFalse       int32     `json:"votesFalse"`
	Approved         bool      `json:"approved"`
	CreatedBy        string    `json:"createdBy,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Candidate is a fact submission before the server assigned an id.
type Candidate struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// Votes returns the current counter for the given metric.
func (f *Fact) Votes(m Metric) int32 {
	switch m {
	case MetricInteresting:
		return f.VotesInteresting
	case MetricMindblowing:
		return f.VotesMindblowing
	case MetricFalse:
		return f.VotesFalse
	}
	return 0
}
