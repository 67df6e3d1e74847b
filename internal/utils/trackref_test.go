package utils

import (
	"testing"

	"maestro/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTrackID(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uri form",
			input:    "spotify:track:6rqhFgbbKwnb9MLmUQDhG6",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
		{
			name:     "url form",
			input:    "https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
		{
			name:     "url form with query string",
			input:    "https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6?si=abc123",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
		{
			name:     "http scheme",
			input:    "http://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trackID, err := ExtractTrackID(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, trackID)
		})
	}
}

func TestExtractTrackIDInvalid(t *testing.T) {
	invalid := []string{
		"",
		"6rqhFgbbKwnb9MLmUQDhG6",
		"spotify:album:6rqhFgbbKwnb9MLmUQDhG6",
		"https://open.spotify.com/album/6rqhFgbbKwnb9MLmUQDhG6",
		"spotify:track:",
		"not a reference at all",
	}

	for _, input := range invalid {
		_, err := ExtractTrackID(input)
		assert.ErrorIs(t, err, types.ErrInvalidInput, "input %q should be rejected", input)
	}
}
