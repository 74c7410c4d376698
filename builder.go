package atomfeed

import (
	"encoding/xml"
	"time"

	"github.com/gorilla/feeds"
)

// defaultGenerator is written when no generator is configured, the same way
// feed libraries credit themselves unless told otherwise.
//
// gorilla/feeds itself never writes <generator>. The builder adds one on
// purpose so Render keeps its token-then-scrub shape and stays correct if the
// serializer is swapped for one that credits itself. Do not drop it.
const defaultGenerator = "github.com/gorilla/feeds"

// builderOptions are the feed-level fields handed to newBuilder.
type builderOptions struct {
	ID          string
	Link        string
	Title       string
	Description string
	Image       string
	Favicon     string
	Language    string
	Author      Author
	Updated     time.Time
	Copyright   string
	Generator   string
}

// builderItem is one entry handed to AddItem.
type builderItem struct {
	ID          string
	Link        string
	Title       string
	Description string
	Date        time.Time
	Content     string
}

// builder accumulates a feed on top of gorilla/feeds and serializes it as
// Atom. gorilla/feeds only knows a subset of the Atom elements, so Atom1
// fills in the rest on the library's AtomFeed before marshaling.
type builder struct {
	opts       builderOptions
	feed       *feeds.Feed
	categories []string
	encode     encodeFunc
}

// encodeFunc turns an XML-ready feed into text; feeds.ToXML by default.
type encodeFunc func(feeds.XmlFeed) (string, error)

func newBuilder(opts builderOptions) *builder {
	if opts.Generator == "" {
		opts.Generator = defaultGenerator
	}

	return &builder{
		opts: opts,
		feed: &feeds.Feed{
			Id:          opts.ID,
			Title:       opts.Title,
			Link:        &feeds.Link{Href: opts.Link, Rel: "alternate"},
			Description: opts.Description,
			Author:      &feeds.Author{Name: opts.Author.Name, Email: opts.Author.Email},
			Updated:     opts.Updated,
			Copyright:   opts.Copyright,
			Image:       &feeds.Image{Url: opts.Image, Title: opts.Title, Link: opts.Link},
		},
		encode: feeds.ToXML,
	}
}

// AddCategory appends a feed-level category.
func (b *builder) AddCategory(term string) {
	b.categories = append(b.categories, term)
}

// AddItem appends an entry. An empty Content stays empty so that no
// <content> element is written.
func (b *builder) AddItem(item builderItem) {
	b.feed.Add(&feeds.Item{
		Id:          item.ID,
		Title:       item.Title,
		Link:        &feeds.Link{Href: item.Link},
		Description: item.Description,
		Updated:     item.Date,
		Content:     item.Content,
	})
}

// Atom1 serializes the feed as an Atom 1.0 document.
func (b *builder) Atom1() (string, error) {
	atom := (&feeds.Atom{Feed: b.feed}).AtomFeed()
	atom.Id = b.opts.ID
	atom.Logo = b.opts.Image
	atom.Icon = b.opts.Favicon
	atom.Rights = b.opts.Copyright
	if atom.Author != nil {
		atom.Author.Uri = b.opts.Author.URI
	}

	doc := &atomDocument{
		AtomFeed:  atom,
		Lang:      b.opts.Language,
		Generator: &atomGenerator{Value: b.opts.Generator},
	}
	for _, term := range b.categories {
		doc.Categories = append(doc.Categories, atomCategory{Term: term})
	}

	return b.encode(doc)
}

// atomDocument extends the library's AtomFeed with the elements it has no
// fields for. The embedded single-valued Category is left empty in favor of
// Categories.
type atomDocument struct {
	*feeds.AtomFeed
	Lang       string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Generator  *atomGenerator
	Categories []atomCategory
}

// FeedXml satisfies feeds.XmlFeed.
func (d *atomDocument) FeedXml() interface{} {
	return d
}

type atomGenerator struct {
	XMLName xml.Name `xml:"generator"`
	Value   string   `xml:",chardata"`
}

type atomCategory struct {
	XMLName xml.Name `xml:"category"`
	Term    string   `xml:"term,attr"`
}
