package services

import (
	"context"
	"sync"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// FeedController loads the feed and keeps the last successful result. Loads
// are tagged with an epoch: when a newer load starts before an older one
// finishes, the older response is discarded instead of clobbering the newer
// one. On failure the previous list is retained so the user still has
// something to look at.
type FeedController struct {
	api api.Client

	mu       sync.Mutex
	epoch    uint64
	loading  bool
	category string
	facts    []facts.Fact
}

func NewFeedController(apiClient api.Client) *FeedController {
	return &FeedController{api: apiClient, category: "all"}
}

// Load fetches the feed for the given category and returns the list now
// held by the controller. A response that lost the race to a newer Load is
// dropped; the caller gets the retained list.
func (c *FeedController) Load(ctx context.Context, category string) ([]facts.Fact, error) {

	c.mu.Lock()
	c.epoch++
	mine := c.epoch
	c.loading = true
	c.category = category
	c.mu.Unlock()

	list, err := c.api.ListFacts(ctx, category)

	c.mu.Lock()
	defer c.mu.Unlock()

	if mine != c.epoch {
		// a newer load superseded this one
		return c.facts, nil
	}

	c.loading = false
	if err != nil {
		return c.facts, err
	}

	c.facts = list
	return c.facts, nil
}

// Prepend puts a freshly submitted fact at the front of the retained
// list, so the author sees it without a reload.
func (c *FeedController) Prepend(f facts.Fact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.facts = append([]facts.Fact{f}, c.facts...)
}

// Replace swaps the retained row with the same id for the server's
// version, typically the post-vote counts. An id not in the list is a
// no-op.
func (c *FeedController) Replace(f facts.Fact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.facts {
		if c.facts[i].ID == f.ID {
			c.facts[i] = f
			return
		}
	}
}

// Facts returns the last successfully loaded list.
func (c *FeedController) Facts() []facts.Fact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facts
}

func (c *FeedController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Category returns the filter of the most recent load.
func (c *FeedController) Category() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}
