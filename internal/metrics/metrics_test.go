package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveResult(domain.Result{Similarity: 0.9, Verdict: domain.HighlySimilar})
	r.ObserveResult(domain.Result{Similarity: 0.95, Verdict: domain.HighlySimilar})
	r.ObserveResult(domain.Result{Similarity: 0.1, Verdict: domain.LowSimilarity})
	r.ObserveRequest("/compare", 3*time.Millisecond)
	r.ObserveError("/compare", "400")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.comparisons.WithLabelValues("highly_similar")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.comparisons.WithLabelValues("low_similarity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues("/compare", "400")))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
