// Package config loads feed descriptions from YAML or TOML files and turns
// them into atomfeed.Feed values.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pevans/atomfeed"
)

// Load reads the feed description at path and converts it into a Feed. The
// result still needs atomfeed.Render (or atomfeed.Validate) to check that it
// is complete.
func Load(path string) (atomfeed.Feed, error) {
	file, err := LoadFile(path)
	if err != nil {
		return atomfeed.Feed{}, err
	}

	feed, err := file.Feed(filepath.Dir(path))
	if err != nil {
		return atomfeed.Feed{}, fmt.Errorf("%s: %w", path, err)
	}

	return feed, nil
}

// Feed converts the description into a Feed. Relative content_file paths
// are resolved against baseDir.
func (f *FeedFile) Feed(baseDir string) (atomfeed.Feed, error) {
	feedURL, err := parseURL("url", f.URL)
	if err != nil {
		return atomfeed.Feed{}, err
	}
	logo, err := parseURL("logo", f.Logo)
	if err != nil {
		return atomfeed.Feed{}, err
	}
	icon, err := parseURL("icon", f.Icon)
	if err != nil {
		return atomfeed.Feed{}, err
	}

	tag := f.Language
	if tag == "" {
		tag = atomfeed.English.String()
	}
	lang, err := atomfeed.ParseLanguage(tag)
	if err != nil {
		return atomfeed.Feed{}, &atomfeed.InputError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", tag)}
	}

	entries := make([]atomfeed.Entry, 0, len(f.Entries))
	for i, e := range f.Entries {
		entry, err := e.entry(fmt.Sprintf("entries[%d]", i), baseDir)
		if err != nil {
			return atomfeed.Feed{}, err
		}
		entries = append(entries, entry)
	}

	return atomfeed.Feed{
		ID:         f.ID,
		URL:        feedURL,
		Title:      f.Title,
		Subtitle:   f.Subtitle,
		Categories: f.Categories,
		Logo:       logo,
		Icon:       icon,
		Language:   lang,
		Author: atomfeed.Author{
			Name:  f.Author.Name,
			Email: f.Author.Email,
			URI:   f.Author.URI,
		},
		Updated: f.Updated,
		Entries: entries,
	}, nil
}

func (e *EntryFile) entry(prefix, baseDir string) (atomfeed.Entry, error) {
	link, err := parseURL(prefix+".link", e.Link)
	if err != nil {
		return atomfeed.Entry{}, err
	}

	content := e.Content
	if e.ContentFile != "" {
		if content != "" {
			return atomfeed.Entry{}, &atomfeed.InputError{Field: prefix + ".content_file", Reason: "cannot be combined with content"}
		}
		path := e.ContentFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return atomfeed.Entry{}, fmt.Errorf("failed to read %s.content_file: %w", prefix, err)
		}
		content = string(data)
	}

	summary := e.Summary
	if strings.TrimSpace(summary) == "" && strings.TrimSpace(content) != "" {
		summary, err = SummaryFromHTML(content)
		if err != nil {
			return atomfeed.Entry{}, fmt.Errorf("failed to derive %s.summary: %w", prefix, err)
		}
	}

	return atomfeed.Entry{
		ID:         e.ID,
		Title:      e.Title,
		Summary:    summary,
		Updated:    e.Updated,
		Categories: e.Categories,
		Link:       link,
		Content:    content,
	}, nil
}

// SummaryFromHTML returns the text of the first paragraph of an HTML
// fragment, or all of its text if it has no paragraphs. Runs of whitespace
// collapse to single spaces.
func SummaryFromHTML(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	text := doc.Find("p").First().Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " "), nil
}

// parseURL leaves empty values as nil so that Validate reports them as
// missing rather than relative.
func parseURL(field, raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &atomfeed.InputError{Field: field, Reason: err.Error()}
	}

	return u, nil
}
