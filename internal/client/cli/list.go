package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ayushchouksey/jeclens/internal/categories"
	"github.com/ayushchouksey/jeclens/internal/facts"
)

// List reloads and prints the feed for the current category filter.
func (a *App) List(ctx context.Context) error {

	list, err := a.feed.Load(ctx, a.feed.Category())
	if err != nil {
		reportError(err)
		// the retained list is still worth showing
	}

	printFacts(list, a.feed.Category())
	return err
}

// Filter asks for a category and reloads the feed with it.
func (a *App) Filter(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Category (or 'all')", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	if name != categories.All && !categories.IsValid(name) {
		log.Printf("Unknown category %q, see 'categories'", name)
		return nil
	}

	list, err := a.feed.Load(ctx, name)
	if err != nil {
		reportError(err)
	}

	printFacts(list, name)
	return err
}

// Categories prints the fixed department list.
func (a *App) Categories(ctx context.Context) error {
	for _, c := range categories.List {
		fmt.Printf("  %-32s %s\n", c.Name, c.Color)
	}
	return nil
}

func printFacts(list []facts.Fact, category string) {

	if len(list) == 0 {
		log.Printf("No facts for %q yet. Share the first one!", category)
		return
	}

	for _, f := range list {
		marker := ""
		if !f.Approved {
			marker = " [PENDING APPROVAL]"
		}
		fmt.Printf("#%d [%s]%s %s (%s)\n", f.ID, f.Category, marker, f.Text, f.Source)
		fmt.Printf("    interesting: %d  mindblowing: %d  false: %d\n",
			f.VotesInteresting, f.VotesMindblowing, f.VotesFalse)
	}
}
