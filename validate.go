package atomfeed

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Errors returned by Render
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrSerialization = errors.New("atom serialization failed")
)

// InputError reports which field of a Feed failed validation. It unwraps to
// ErrInvalidInput.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks that feed is complete enough to render. The first problem
// found is returned as an *InputError.
func Validate(feed Feed) error {
	if err := required("id", feed.ID); err != nil {
		return err
	}
	if err := absoluteURL("url", feed.URL); err != nil {
		return err
	}
	if err := required("title", feed.Title); err != nil {
		return err
	}
	if err := required("subtitle", feed.Subtitle); err != nil {
		return err
	}
	for i, category := range feed.Categories {
		if err := required(fmt.Sprintf("categories[%d]", i), category); err != nil {
			return err
		}
	}
	if err := absoluteURL("logo", feed.Logo); err != nil {
		return err
	}
	if err := absoluteURL("icon", feed.Icon); err != nil {
		return err
	}
	if !feed.Language.Supported() {
		return &InputError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", feed.Language)}
	}
	if err := required("author.name", feed.Author.Name); err != nil {
		return err
	}
	if feed.Updated.IsZero() {
		return &InputError{Field: "updated", Reason: "must be set"}
	}

	for i, entry := range feed.Entries {
		if err := validateEntry(fmt.Sprintf("entries[%d]", i), entry); err != nil {
			return err
		}
	}

	return nil
}

func validateEntry(prefix string, entry Entry) error {
	if err := required(prefix+".id", entry.ID); err != nil {
		return err
	}
	if err := required(prefix+".title", entry.Title); err != nil {
		return err
	}
	if err := required(prefix+".summary", entry.Summary); err != nil {
		return err
	}
	if entry.Updated.IsZero() {
		return &InputError{Field: prefix + ".updated", Reason: "must be set"}
	}
	return absoluteURL(prefix+".link", entry.Link)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &InputError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

// absoluteURL requires both a scheme and a host; url.URL.IsAbs alone would
// accept "mailto:" style references that readers cannot follow.
func absoluteURL(field string, u *url.URL) error {
	if u == nil {
		return &InputError{Field: field, Reason: "must be set"}
	}
	if !u.IsAbs() || u.Host == "" {
		return &InputError{Field: field, Reason: fmt.Sprintf("must be an absolute URL, got %q", u.String())}
	}
	return nil
}
