package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

func sampleReport() domain.Report {
	started := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	return domain.Report{
		RunID:      "3f1c2a9e-0000-4000-8000-000000000001",
		SourcePath: "docs/orig.txt",
		TargetPath: "docs/copy.txt",
		Started:    started,
		Finished:   started.Add(42 * time.Millisecond),
		Result: domain.Result{
			DifferenceScore: 3,
			Similarity:      0.953125,
			Verdict:         domain.HighlySimilar,
			FingerprintA:    0x0c9d40ed,
			FingerprintB:    0x0c9dc8ad,
		},
	}
}

func TestRenderText(t *testing.T) {
	want := strings.Join([]string{
		"Run ID: 3f1c2a9e-0000-4000-8000-000000000001",
		"Analysis time: 2024-03-09 14:30:00 - 2024-03-09 14:30:00",
		"Duration: 42 ms",
		"Source document: docs/orig.txt",
		"Target document: docs/copy.txt",
		"Difference score: 3",
		"Similarity: 95.31%",
		"Verdict: highly similar / possible plagiarism",
		strings.Repeat("-", 40),
		"",
	}, "\n")

	assert.Equal(t, want, RenderText(sampleReport()))
}

func TestTextReporterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "analysis.txt")
	rep := NewTextReporter(path)

	require.NoError(t, rep.Report(sampleReport()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderText(sampleReport()), string(first))
	assert.NotContains(t, string(first), "Document Similarity Report")

	require.NoError(t, rep.Report(sampleReport()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(second), string(first)))
	assert.Equal(t, 1, strings.Count(string(second), "Document Similarity Report"))
	assert.Equal(t, 2, strings.Count(string(second), "Similarity: 95.31%"))
}

func TestJSONReporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	rep, err := NewFileReporter(FormatJSON, path)
	require.NoError(t, err)

	require.NoError(t, rep.Report(sampleReport()))
	require.NoError(t, rep.Report(sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "highly_similar", rec["verdict"])
	assert.Equal(t, float64(3), rec["difference_score"])
	assert.Equal(t, float64(42), rec["duration_ms"])
	assert.Equal(t, "000000000c9d40ed", rec["fingerprint_a"])
}

func TestNewFileReporterRejectsFormat(t *testing.T) {
	_, err := NewFileReporter("xml", "out")
	assert.Error(t, err)
}

func TestReporterIOFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewTextReporter(filepath.Join(blocker, "out.txt")).Report(sampleReport())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIO))
}

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf, "results/analysis.txt").Report(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "results/analysis.txt")
	assert.Contains(t, out, "95.31%")
	assert.Contains(t, out, "highly similar / possible plagiarism")
	assert.Contains(t, out, "42 ms")
}

type failingReporter struct{ err error }

func (f failingReporter) Report(domain.Report) error { return f.err }

func TestChainStopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	err := Chain{failingReporter{boom}, NewConsoleReporter(&buf, "")}.Report(sampleReport())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, buf.String())
}

func TestChainRunsAllOnSuccess(t *testing.T) {
	var first, second bytes.Buffer

	err := Chain{NewConsoleReporter(&first, "a.txt"), NewConsoleReporter(&second, "b.txt")}.Report(sampleReport())
	require.NoError(t, err)
	assert.Contains(t, first.String(), "a.txt")
	assert.Contains(t, second.String(), "b.txt")
}
