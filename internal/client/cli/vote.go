package cli

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/ayushchouksey/jeclens/internal/facts"
)

// metricAliases maps the short names typed by the user to the canonical
// metric identifiers.
var metricAliases = map[string]facts.Metric{
	"interesting": facts.MetricInteresting,
	"mindblowing": facts.MetricMindblowing,
	"false":       facts.MetricFalse,
}

// Vote asks for a fact id and a metric and casts the vote. A metric this
// device already voted on is rejected without a server round trip.
func (a *App) Vote(ctx context.Context) error {

	rawID, err := GetSimpleText(a.reader, "Fact id", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	factID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Printf("Not a fact id: %q", rawID)
		return nil
	}

	rawMetric, err := GetSimpleText(a.reader, "Metric (interesting / mindblowing / false)", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	metric, ok := metricAliases[rawMetric]
	if !ok {
		log.Printf("Unknown metric %q", rawMetric)
		return nil
	}

	updated, err := a.votes.Vote(ctx, a.sessions.Current(), factID, metric)
	if err != nil {
		reportError(err)
		return err
	}

	a.feed.Replace(*updated)
	log.Printf("Voted. #%d now has %d %s votes", updated.ID, updated.Votes(metric), rawMetric)
	return nil
}

// Approve asks for a fact id and requests its approval. The server decides
// whether this identity is allowed to approve.
func (a *App) Approve(ctx context.Context) error {

	rawID, err := GetSimpleText(a.reader, "Fact id", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	factID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Printf("Not a fact id: %q", rawID)
		return nil
	}

	updated, err := a.moderation.Approve(ctx, a.sessions.Current(), factID)
	if err != nil {
		reportError(err)
		return err
	}

	a.feed.Replace(*updated)
	log.Printf("Approved #%d", updated.ID)
	return nil
}
