package cli

import (
	"context"
	"log"
	"os"

	"github.com/ayushchouksey/jeclens/internal/facts"
)

// Post walks the user through a fact submission. The gate rejects bad
// input and an exhausted daily quota before anything is sent.
func (a *App) Post(ctx context.Context) error {

	text, err := GetSimpleText(a.reader, "Share a fact (max 200 characters)", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	source, err := GetSimpleText(a.reader, "Trustworthy source (http/https URL)", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	category, err := GetSimpleText(a.reader, "Category (see 'categories')", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	candidate := facts.Candidate{Text: text, Source: source, Category: category}

	created, err := a.submissions.Submit(ctx, a.sessions.Current(), candidate)
	if err != nil {
		reportError(err)
		return err
	}

	a.feed.Prepend(*created)
	log.Printf("Posted #%d, awaiting approval", created.ID)
	return nil
}
