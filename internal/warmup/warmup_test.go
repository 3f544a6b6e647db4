package warmup

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

type countingCalculator struct{ calls atomic.Int64 }

func (c *countingCalculator) Compare(a, b string) domain.Result {
	c.calls.Add(1)
	return domain.Result{}
}

func (c *countingCalculator) Fingerprint(string) uint64 {
	c.calls.Add(1)
	return 0
}

func TestWarmUp(t *testing.T) {
	calc := &countingCalculator{}
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{
		Concurrency:    2,
		Iterations:     10,
		SampleTextSize: 100,
	})
	mgr.RegisterCalculator(calc)
	mgr.RegisterFingerprinter(calc)

	ops := mgr.WarmUp(context.Background())
	assert.Equal(t, int64(40), ops)
	assert.Equal(t, int64(40), calc.calls.Load())
}

func TestWarmUpCancelled(t *testing.T) {
	calc := &countingCalculator{}
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 4, Iterations: 1000})
	mgr.RegisterCalculator(calc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, int64(0), mgr.WarmUp(ctx))
}

func TestGenerateSimilarText(t *testing.T) {
	original := generateSampleText(100)
	similar := generateSimilarText(original, 0.5)

	assert.Len(t, strings.Fields(similar), len(strings.Fields(original)))
	assert.NotEqual(t, original, similar)
	assert.Equal(t, original, generateSimilarText(original, 0))
}
