package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearFromReleaseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "year only", input: "1963", expected: 1963},
		{name: "year and month", input: "1963-05", expected: 1963},
		{name: "full date", input: "1963-05-17", expected: 1963},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			year := YearFromReleaseDate(tc.input)
			require.NotNil(t, year)
			assert.Equal(t, tc.expected, *year)
		})
	}
}

func TestYearFromReleaseDateUnparseable(t *testing.T) {
	for _, input := range []string{"", "19", "abcd-01-01", "??"} {
		assert.Nil(t, YearFromReleaseDate(input), "input %q should yield nil", input)
	}
}
