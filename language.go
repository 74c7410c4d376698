package atomfeed

import "fmt"

// Language is the content language of a feed, written to the root element
// as xml:lang.
type Language string

// English is the only supported language for now.
const English Language = "en"

var supportedLanguages = []Language{English}

// Supported reports whether l is a language this package knows how to render.
func (l Language) Supported() bool {
	for _, s := range supportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage converts a language tag into a Language, rejecting anything
// unsupported.
func ParseLanguage(tag string) (Language, error) {
	l := Language(tag)
	if !l.Supported() {
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, tag)
	}
	return l, nil
}
