package simhash

import (
	"fmt"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/fingerprint"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/hasher"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/scorer"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/tokenizer"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// SimilarityConfig holds configuration for the SimHash calculator.
type SimilarityConfig struct {
	Seed         uint64
	TokenPattern string
	Thresholds   scorer.Thresholds
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Seed:         hasher.DefaultSeed,
		TokenPattern: tokenizer.DefaultPattern,
		Thresholds:   scorer.DefaultThresholds(),
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if err := (tokenizer.Config{Pattern: c.TokenPattern}).Validate(); err != nil {
		return fmt.Errorf("invalid token pattern: %w", err)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	return nil
}

// Calculator implements SimHash-based document comparison.
// All of its state is immutable after construction.
type Calculator struct {
	config    SimilarityConfig
	logger    ports.Logger
	tokenizer ports.Tokenizer
	builder   *fingerprint.Builder
	scorer    *scorer.Scorer
}

// NewCalculator creates a new SimHash calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tok, err := tokenizer.New(tokenizer.Config{Pattern: config.TokenPattern})
	if err != nil {
		return nil, err
	}
	sc, err := scorer.New(config.Thresholds)
	if err != nil {
		return nil, err
	}

	return &Calculator{
		config:    config,
		logger:    logger,
		tokenizer: tok,
		builder:   fingerprint.NewBuilder(hasher.New(config.Seed)),
		scorer:    sc,
	}, nil
}

// Config returns the configuration the calculator was built with.
func (c *Calculator) Config() SimilarityConfig {
	return c.config
}

// Fingerprint returns the SimHash of text.
func (c *Calculator) Fingerprint(text string) uint64 {
	return c.builder.Build(c.tokenizer.Tokenize(text))
}

// Compare fingerprints both texts and scores them against each other.
func (c *Calculator) Compare(textA, textB string) domain.Result {
	tokensA := c.tokenizer.Tokenize(textA)
	tokensB := c.tokenizer.Tokenize(textB)

	c.logger.Debug("Tokenized texts",
		"tokens_a", len(tokensA),
		"tokens_b", len(tokensB),
	)

	fpA := c.builder.Build(tokensA)
	fpB := c.builder.Build(tokensB)

	result := c.scorer.Score(fpA, fpB)
	result.TokensA = len(tokensA)
	result.TokensB = len(tokensB)
	result.Details = map[string]interface{}{
		"fingerprint_a": fmt.Sprintf("%016x", fpA),
		"fingerprint_b": fmt.Sprintf("%016x", fpB),
		"tokens_a":      len(tokensA),
		"tokens_b":      len(tokensB),
		"bit_length":    fingerprint.BitLength,
		"seed":          c.config.Seed,
	}

	c.logger.Debug("Computed simhash similarity",
		"difference", result.DifferenceScore,
		"similarity", result.Similarity,
		"verdict", result.Verdict.String(),
	)

	return result
}
