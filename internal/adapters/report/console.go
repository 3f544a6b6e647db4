package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle = lipgloss.NewStyle().Bold(true)

	verdictColors = map[domain.Verdict]lipgloss.Color{
		domain.HighlySimilar:     lipgloss.Color("#FF3838"),
		domain.ModeratelySimilar: lipgloss.Color("#FFB800"),
		domain.LightlySimilar:    lipgloss.Color("#4D96FF"),
		domain.LowSimilarity:     lipgloss.Color("#00D26A"),
	}
)

// VerdictStyle returns the colour style for v.
func VerdictStyle(v domain.Verdict) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(verdictColors[v])
}

// ConsoleReporter prints a short summary of each comparison.
type ConsoleReporter struct {
	out        io.Writer
	outputPath string
}

// NewConsoleReporter prints to out. outputPath, if set, is announced as the
// location of the full report.
func NewConsoleReporter(out io.Writer, outputPath string) ports.Reporter {
	return &ConsoleReporter{out: out, outputPath: outputPath}
}

// Report prints the summary lines.
func (c *ConsoleReporter) Report(r domain.Report) error {
	if c.outputPath != "" {
		c.line("Analysis complete, report saved to", c.outputPath)
	}
	c.line("Similarity", fmt.Sprintf("%.2f%%", r.Result.Similarity*100))
	fmt.Fprintf(c.out, "%s %s\n",
		labelStyle.Render("Verdict:"),
		VerdictStyle(r.Result.Verdict).Render(r.Result.Verdict.Description()))
	c.line("Elapsed", fmt.Sprintf("%d ms", r.Duration().Milliseconds()))
	return nil
}

func (c *ConsoleReporter) line(label, value string) {
	fmt.Fprintf(c.out, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}
