package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		entry       []string
		expectError bool
	}{
		{"PriceAndSize", []string{"100.5", "2"}, false},
		{"WithOrderCount", []string{"100.5", "2", "13"}, false},
		{"TooShort", []string{"100.5"}, true},
		{"BadPrice", []string{"abc", "2"}, true},
		{"BadSize", []string{"100.5", ""}, true},
		{"NegativePrice", []string{"-1", "2"}, true},
		{"NegativeSize", []string{"100.5", "-2"}, true},
		{"BadOrderCount", []string{"100.5", "2", "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.entry)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrMalformedLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "100.5", level.Price.String())
			assert.Equal(t, "2", level.Size.String())
		})
	}
}

func TestParseLevel_KeepsOrderCount(t *testing.T) {
	level, err := ParseLevel([]string{"100", "2", "13"})

	require.NoError(t, err)
	assert.Equal(t, 13, level.Count)
}

func TestNormalizeBatch_SkipMalformed(t *testing.T) {
	entries := [][]string{{"100", "1"}, {"bad", "x"}, {"101", "2"}}

	levels, skipped, err := normalizeBatch(entries, ParseLevel, SkipMalformed)

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, levels, 2)
	assert.Equal(t, "101", levels[1].Price.String())
}

func TestNormalizeBatch_AbortOnMalformed(t *testing.T) {
	entries := [][]string{{"100", "1"}, {"bad", "x"}, {"101", "2"}}

	levels, _, err := normalizeBatch(entries, ParseLevel, AbortOnMalformed)

	assert.ErrorIs(t, err, ErrMalformedLevel)
	assert.Nil(t, levels)
}
