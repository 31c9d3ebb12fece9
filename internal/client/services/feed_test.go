package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushchouksey/jeclens/internal/facts"
)

func TestFeedController_Load(t *testing.T) {
	api := &fakeAPI{listResp: []facts.Fact{{ID: 1}, {ID: 2}}}
	c := NewFeedController(api)

	got, err := c.Load(context.Background(), "civil")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "civil", c.Category())
	assert.False(t, c.Loading())
}

func TestFeedController_ErrorRetainsPreviousList(t *testing.T) {
	api := &fakeAPI{listResp: []facts.Fact{{ID: 1}}}
	c := NewFeedController(api)

	_, err := c.Load(context.Background(), "all")
	require.NoError(t, err)

	api.listErr = errors.New("server down")
	got, err := c.Load(context.Background(), "all")
	assert.Error(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].ID)
}

func TestFeedController_PrependPutsNewFactFirst(t *testing.T) {
	api := &fakeAPI{listResp: []facts.Fact{{ID: 1}, {ID: 2}}}
	c := NewFeedController(api)

	_, err := c.Load(context.Background(), "all")
	require.NoError(t, err)

	c.Prepend(facts.Fact{ID: 3, Category: "society"})

	got := c.Facts()
	require.Len(t, got, 3)
	assert.EqualValues(t, 3, got[0].ID)
	assert.EqualValues(t, 1, got[1].ID)
}

func TestFeedController_ReplaceSwapsMatchingRow(t *testing.T) {
	api := &fakeAPI{listResp: []facts.Fact{{ID: 1}, {ID: 2, VotesInteresting: 4}}}
	c := NewFeedController(api)

	_, err := c.Load(context.Background(), "all")
	require.NoError(t, err)

	c.Replace(facts.Fact{ID: 2, VotesInteresting: 5})
	// an id the list never held changes nothing
	c.Replace(facts.Fact{ID: 99})

	got := c.Facts()
	require.Len(t, got, 2)
	assert.EqualValues(t, 1, got[0].ID)
	assert.EqualValues(t, 5, got[1].VotesInteresting)
}

// blockingAPI holds its first ListFacts call open until release is fed,
// while later calls answer immediately.
type blockingAPI struct {
	fakeAPI
	started chan struct{}
	release chan []facts.Fact
}

func (b *blockingAPI) ListFacts(ctx context.Context, category string) ([]facts.Fact, error) {
	if b.release != nil {
		ch := b.release
		b.release = nil
		close(b.started)
		return <-ch, nil
	}
	return b.listResp, nil
}

func TestFeedController_StaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan []facts.Fact)
	api := &blockingAPI{started: started, release: release}
	api.listResp = []facts.Fact{{ID: 2, Category: "mechanical"}}
	c := NewFeedController(api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// started first, finishes last
		_, _ = c.Load(context.Background(), "civil")
	}()
	<-started

	// the newer load completes immediately
	got, err := c.Load(context.Background(), "mechanical")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0].ID)

	// the stale response arrives and must not replace the newer result
	release <- []facts.Fact{{ID: 1, Category: "civil"}}
	<-done

	kept := c.Facts()
	require.Len(t, kept, 1)
	assert.EqualValues(t, 2, kept[0].ID)
	assert.Equal(t, "mechanical", c.Category())
}
