package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tok := Default()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Mixed CJK and ASCII",
			text:     "The Cat sat. 猫咪 cat!",
			expected: []string{"the", "cat", "sat", "猫咪", "cat"},
		},
		{
			name:     "Digits are part of tokens",
			text:     "route66 and 42",
			expected: []string{"route66", "and", "42"},
		},
		{
			name:     "Punctuation separates",
			text:     "cat, dog!",
			expected: []string{"cat", "dog"},
		},
		{
			name:     "Non-ASCII letters separate",
			text:     "café",
			expected: []string{"caf"},
		},
		{
			name:     "CJK punctuation separates",
			text:     "今天，天气晴。",
			expected: []string{"今天", "天气晴"},
		},
		{
			name:     "Empty",
			text:     "",
			expected: nil,
		},
		{
			name:     "Whitespace only",
			text:     " \t\n ",
			expected: nil,
		},
		{
			name:     "Separators only",
			text:     "!!! ... ???",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.text)
			assert.Len(t, got, len(tc.expected))
			if len(tc.expected) > 0 {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestTokenizeIsCaseInsensitive(t *testing.T) {
	tok := Default()
	assert.Equal(t, tok.Tokenize("hello WORLD"), tok.Tokenize("Hello world"))
}

func TestWeights(t *testing.T) {
	tokens := Default().Tokenize("The Cat sat. 猫咪 cat!")
	weights := Weights(tokens)

	assert.Equal(t, map[string]int{"the": 1, "cat": 2, "sat": 1, "猫咪": 1}, weights)

	total := 0
	for _, w := range weights {
		total += w
	}
	assert.Equal(t, len(tokens), total)
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(Config{Pattern: ""})
	require.Error(t, err)

	_, err = New(Config{Pattern: "[a-"})
	require.Error(t, err)
}

func TestCustomPattern(t *testing.T) {
	tok, err := New(Config{Pattern: `[a-z]+`})
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, tok.Tokenize("abc1DEF"))
}

func TestLowercaseAfterMatch(t *testing.T) {
	tok, err := New(Config{Pattern: `[A-Z]+`})
	require.NoError(t, err)
	assert.Equal(t, []string{"def", "g"}, tok.Tokenize("abcDEF1G"))
}
