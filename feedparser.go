package atomfeed

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Parse reads an Atom document back into a gofeed.Feed. It is the inverse
// of Render as far as readers are concerned, and is what the check command
// uses to confirm that rendered output is readable. Documents in any other
// format are rejected.
func Parse(doc string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	if feed.FeedType != "atom" {
		return nil, fmt.Errorf("expected an atom feed, got %s", feed.FeedType)
	}

	return feed, nil
}

// EntryTitles lists the titles of a parsed feed's entries in document
// order.
func EntryTitles(feed *gofeed.Feed) []string {
	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		titles = append(titles, item.Title)
	}
	return titles
}
