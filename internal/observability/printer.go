package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// AnalysisReport is the critique shown after an analyze call.
type AnalysisReport struct {
	Strengths   []string
	Weaknesses  []string
	Suggestions []string
	ToneSummary string
}

// PrintAnalysis outputs a human-readable resume critique.
func (p *Printer) PrintAnalysis(report *AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.ToneSummary != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s\n\n", report.ToneSummary))
	}
	writeSection(&sb, "Strengths", report.Strengths)
	writeSection(&sb, "Weaknesses", report.Weaknesses)
	writeSection(&sb, "Suggestions", report.Suggestions)

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// ListedResume is one row of the saved-resume listing.
type ListedResume struct {
	ID        string
	Title     string
	UpdatedAt time.Time
}

// PrintResumeList outputs the saved resumes, flagging a stale cache copy.
func (p *Printer) PrintResumeList(resumes []ListedResume, stale bool) {
	var sb strings.Builder
	if stale {
		sb.WriteString("(offline copy, may be out of date)\n\n")
	}
	if len(resumes) == 0 {
		sb.WriteString("No saved resumes.")
	}

	for i, r := range resumes {
		title := r.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-32s %s\n", title, r.ID))
		if !r.UpdatedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("  updated %s\n", r.UpdatedAt.Format("2006-01-02 15:04")))
		}
		if i < len(resumes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SAVED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSection(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
