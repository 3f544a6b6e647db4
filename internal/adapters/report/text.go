package report

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// TimeLayout formats report timestamps.
const TimeLayout = "2006-01-02 15:04:05"

var (
	bannerRule    = strings.Repeat("=", 40)
	separatorRule = strings.Repeat("-", 40)
)

// TextReporter appends human-readable reports to a file.
type TextReporter struct {
	path string
}

// NewTextReporter creates a reporter appending to path.
func NewTextReporter(path string) ports.Reporter {
	return &TextReporter{path: path}
}

// Report appends r to the output file. A banner precedes every report
// written to a file that already existed.
func (t *TextReporter) Report(r domain.Report) (err error) {
	f, existed, err := openAppend(t.path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, t.path, err) }()

	w := bufio.NewWriter(f)
	if existed {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bannerRule)
		fmt.Fprintln(w, "Document Similarity Report")
		fmt.Fprintln(w, bannerRule)
		fmt.Fprintln(w)
	}
	writeBody(w, r)

	if err := w.Flush(); err != nil {
		return domain.NewDocumentError("write", t.path, domain.ErrIO, err)
	}
	return nil
}

// RenderText renders r exactly as TextReporter writes it, without the banner.
func RenderText(r domain.Report) string {
	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	writeBody(w, r)
	w.Flush()
	return sb.String()
}

func writeBody(w *bufio.Writer, r domain.Report) {
	fmt.Fprintf(w, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(w, "Analysis time: %s - %s\n", r.Started.Format(TimeLayout), r.Finished.Format(TimeLayout))
	fmt.Fprintf(w, "Duration: %d ms\n", r.Duration().Milliseconds())
	fmt.Fprintf(w, "Source document: %s\n", r.SourcePath)
	fmt.Fprintf(w, "Target document: %s\n", r.TargetPath)
	fmt.Fprintf(w, "Difference score: %d\n", r.Result.DifferenceScore)
	fmt.Fprintf(w, "Similarity: %.2f%%\n", r.Result.Similarity*100)
	fmt.Fprintf(w, "Verdict: %s\n", r.Result.Verdict.Description())
	fmt.Fprintln(w, separatorRule)
}
