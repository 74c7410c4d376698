package atomfeed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLanguage_English verifies the supported tag parses
func TestParseLanguage_English(t *testing.T) {
	lang, err := ParseLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, English, lang)
	assert.Equal(t, "en", lang.String())
}

// TestParseLanguage_Unsupported verifies other tags are rejected
func TestParseLanguage_Unsupported(t *testing.T) {
	for _, tag := range []string{"", "EN", "en-US", "de"} {
		_, err := ParseLanguage(tag)
		require.Error(t, err, "tag %q should be rejected", tag)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}
