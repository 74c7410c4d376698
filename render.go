package atomfeed

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
)

// Render produces an Atom 1.0 document for feed. Formatting of the output
// is left to the serializer; callers that care about layout should run it
// through their own formatter.
//
// Render is safe to call from multiple goroutines.
func Render(feed Feed) (string, error) {
	return render(feed, feeds.ToXML)
}

func render(feed Feed, encode encodeFunc) (string, error) {
	if err := Validate(feed); err != nil {
		return "", err
	}

	// The builder always credits a generator and there is no way to turn
	// that off. Hand it a one-off token, then cut the exact element out of
	// the text afterwards.
	generator := uuid.New().String()

	b := newBuilder(builderOptions{
		ID:          feed.ID,
		Link:        feed.URL.String(),
		Title:       feed.Title,
		Description: feed.Subtitle,
		Image:       feed.Logo.String(),
		Favicon:     feed.Icon.String(),
		Language:    feed.Language.String(),
		Author:      feed.Author,
		Updated:     feed.Updated,
		// An empty copyright leaves <rights> out entirely.
		Copyright: "",
		Generator: generator,
	})
	b.encode = encode

	for _, category := range feed.Categories {
		b.AddCategory(category)
	}

	// TODO: Entry.Categories are not written. Confirm with the feed owners
	// whether they should become entry-level <category> elements.
	for _, entry := range feed.Entries {
		b.AddItem(builderItem{
			ID:          entry.ID,
			Link:        entry.Link.String(),
			Title:       entry.Title,
			Description: entry.Summary,
			Date:        entry.Updated,
			Content:     entry.Content,
		})
	}

	xml, err := b.Atom1()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return strings.ReplaceAll(xml, "<generator>"+generator+"</generator>", ""), nil
}
