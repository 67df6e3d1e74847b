package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full composer name",
			input:    "Ludwig van Beethoven",
			expected: "ludwig-van-beethoven",
		},
		{
			name:     "punctuation stripped",
			input:    "Saint-Saëns, Camille",
			expected: "saint-sans-camille",
		},
		{
			name:     "whitespace collapsed",
			input:    "  Johann   Sebastian  Bach  ",
			expected: "johann-sebastian-bach",
		},
		{
			name:     "already a slug",
			input:    "ludwig-van-beethoven",
			expected: "ludwig-van-beethoven",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Ludwig van Beethoven", "Dvořák", "J.S. Bach"}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", input)
	}
}

func TestWorkID(t *testing.T) {
	testCases := []struct {
		name          string
		composerID    string
		catalogSystem string
		catalogNumber string
		expected      string
	}{
		{
			name:          "standard opus",
			composerID:    "ludwig-van-beethoven",
			catalogSystem: "Op",
			catalogNumber: "67",
			expected:      "ludwig-van-beethoven/op-67",
		},
		{
			name:          "system already lowercase",
			composerID:    "ludwig-van-beethoven",
			catalogSystem: "op",
			catalogNumber: "67",
			expected:      "ludwig-van-beethoven/op-67",
		},
		{
			name:          "compound number",
			composerID:    "frdric-chopin",
			catalogSystem: "Op",
			catalogNumber: "27/2",
			expected:      "frdric-chopin/op-27/2",
		},
		{
			name:          "hoboken system",
			composerID:    "joseph-haydn",
			catalogSystem: "Hob",
			catalogNumber: "XVI:52",
			expected:      "joseph-haydn/hob-XVI:52",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WorkID(tc.composerID, tc.catalogSystem, tc.catalogNumber))
		})
	}
}

func TestWorkIDCaseInsensitiveSystem(t *testing.T) {
	a := WorkID("beethoven", "OP", "67")
	b := WorkID("beethoven", "op", "67")
	assert.Equal(t, a, b, "catalog system casing must not change the identifier")
}

func TestMovementID(t *testing.T) {
	workID := WorkID("ludwig-van-beethoven", "Op", "67")
	assert.Equal(t, "ludwig-van-beethoven/op-67/1", MovementID(workID, 1))
	assert.Equal(t, "ludwig-van-beethoven/op-67/4", MovementID(workID, 4))
}
