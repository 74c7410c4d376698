// Package atomfeed renders Atom 1.0 syndication documents from a plain
// description of a feed and its entries.
package atomfeed

import (
	"net/url"
	"time"
)

// Feed describes one Atom document. A Feed is consumed by a single call to
// Render and is never modified by it.
type Feed struct {
	ID string

	// URL is the canonical location of the feed. Some readers (NetNewsWire,
	// for one) mishandle relative URLs, so it must be absolute.
	URL *url.URL

	Title string

	// Subtitle is what most feed libraries call the "description".
	Subtitle string

	// Categories are emitted in the order given.
	Categories []string

	// Logo is a wide image for the feed and must be absolute.
	Logo *url.URL

	// Icon is a square, favicon-like image and must be absolute.
	Icon *url.URL

	Language Language
	Author   Author
	Updated  time.Time

	// Entries are emitted in the order given; they are never re-sorted.
	Entries []Entry
}

// Author identifies the person responsible for a feed.
type Author struct {
	Name  string
	Email string
	URI   string
}

// Entry is a single item in a Feed.
type Entry struct {
	ID    string
	Title string

	// Summary is always present. Readers display it when Content is absent.
	Summary string

	Updated time.Time

	// Categories are carried with the entry but not rendered.
	Categories []string

	// Link is the entry's canonical location and must be absolute.
	Link *url.URL

	// Content is the optional full body. Leave it empty rather than writing
	// placeholder text like "Read this on the website"; with no content,
	// readers show the summary instead, which is the better result.
	Content string
}
