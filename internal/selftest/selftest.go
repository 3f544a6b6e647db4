// Package selftest holds the built-in comparison battery run by `simcheck verify`.
package selftest

import (
	"fmt"
	"io"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// Case is a pair of in-memory documents.
type Case struct {
	Name   string
	Source string
	Target string
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case   Case
	Result domain.Result
}

// Cases returns the built-in battery.
func Cases() []Case {
	return []Case{
		{
			Name:   "source_doc vs target_doc",
			Source: "今天是星期天，天气晴，今天晚上我要去看电影。",
			Target: "今天是周天，天气晴朗，我晚上要去看电影。",
		},
		{
			Name:   "doc1 vs doc2",
			Source: "The quick brown fox jumps over the lazy dog. The dog sleeps in the sun.",
			Target: "A quick brown fox leaped over a lazy dog, and the dog kept sleeping in the sun!",
		},
		{
			Name:   "empty vs empty",
			Source: "",
			Target: "  \n\t ",
		},
	}
}

// Run compares every case with calc and prints a line per case to out.
func Run(calc ports.SimilarityCalculator, out io.Writer) []Outcome {
	cases := Cases()
	outcomes := make([]Outcome, 0, len(cases))

	fmt.Fprintln(out, "Running self-test cases...")
	fmt.Fprintln(out)
	for i, c := range cases {
		fmt.Fprintf(out, "Test %d/%d: %s\n", i+1, len(cases), c.Name)
		result := calc.Compare(c.Source, c.Target)
		fmt.Fprintf(out, "Result - similarity: %.2f%% (%s)\n", result.Similarity*100, result.Verdict.Description())
		fmt.Fprintln(out, "------------------------------")
		outcomes = append(outcomes, Outcome{Case: c, Result: result})
	}
	fmt.Fprintln(out, "Self-test complete")

	return outcomes
}
