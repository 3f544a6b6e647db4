package tokenizer

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultPattern matches runs of CJK unified ideographs and ASCII alphanumerics.
const DefaultPattern = `[\x{4E00}-\x{9FA5}A-Za-z0-9]+`

// Config holds configuration for the tokenizer.
type Config struct {
	Pattern string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Pattern: DefaultPattern}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return errors.New("token pattern must not be empty")
	}
	if _, err := regexp.Compile(c.Pattern); err != nil {
		return err
	}
	return nil
}

// Tokenizer splits text into lowercase tokens matching a fixed pattern.
// It is immutable and safe for concurrent use.
type Tokenizer struct {
	pattern *regexp.Regexp
}

// New creates a tokenizer from the given configuration.
func New(config Config) (*Tokenizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Tokenizer{pattern: regexp.MustCompile(config.Pattern)}, nil
}

// Default returns a tokenizer using DefaultPattern.
func Default() *Tokenizer {
	return &Tokenizer{pattern: regexp.MustCompile(DefaultPattern)}
}

// Tokenize returns every maximal match in text, left to right, lowercased.
// Blank input yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	matches := t.pattern.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return matches
}

// Weights counts the occurrences of each distinct token.
func Weights(tokens []string) map[string]int {
	weights := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		weights[tok]++
	}
	return weights
}
