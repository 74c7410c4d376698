package atomfeed

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAtomDocument = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>BitWorking</title>
  <id>http://bitworking.org/</id>
  <updated>2016-09-12T07:21:48-04:00</updated>
  <entry>
    <title>Inertial Balance</title>
    <id>http://bitworking.org/news/2016/08/content2</id>
    <updated>2016-08-16T22:42:54-04:00</updated>
  </entry>
  <entry>
    <title>Stuff</title>
    <id>http://bitworking.org/news/2016/08/stuff</id>
    <updated>2016-08-16T14:30:50-04:00</updated>
  </entry>
</feed>`

const testRSSDocument = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>RSS Feed</title>
    <link>http://example.com</link>
    <description>Not atom</description>
  </channel>
</rss>`

// TestParse_Atom verifies a well-formed Atom document parses
func TestParse_Atom(t *testing.T) {
	feed, err := Parse(testAtomDocument)
	require.NoError(t, err)
	require.NotNil(t, feed)

	assert.Equal(t, "atom", feed.FeedType)
	assert.Equal(t, "BitWorking", feed.Title)
	assert.Equal(t, []string{"Inertial Balance", "Stuff"}, EntryTitles(feed))
}

// TestParse_RejectsRSS verifies non-Atom formats are refused
func TestParse_RejectsRSS(t *testing.T) {
	feed, err := Parse(testRSSDocument)
	require.Error(t, err)
	assert.Nil(t, feed)
	assert.Contains(t, err.Error(), "expected an atom feed")
}

// TestParse_Malformed verifies garbage input is an error
func TestParse_Malformed(t *testing.T) {
	feed, err := Parse("")
	require.Error(t, err)
	assert.Nil(t, feed)
}

// TestEntryTitles_Empty verifies a feed without items has no titles
func TestEntryTitles_Empty(t *testing.T) {
	assert.Empty(t, EntryTitles(&gofeed.Feed{}))
}
