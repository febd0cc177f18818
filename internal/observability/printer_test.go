package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysis_RendersSectionsAndTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&AnalysisReport{
		ToneSummary: "Confident and direct.",
		Strengths:   []string{"Clear impact statements"},
		Suggestions: []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "Confident and direct.")
	assert.Contains(t, out, "Clear impact statements")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "Weaknesses")
}

func TestPrintResumeList_EmptyAndStale(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeList(nil, true)

	out := buf.String()
	assert.Contains(t, out, "offline copy")
	assert.Contains(t, out, "No saved resumes.")
}

func TestNewLogger_LevelsFollowVerbosity(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(&buf, false)
	quiet.Info("hidden")
	assert.Empty(t, buf.String())

	verbose := NewLogger(&buf, true)
	verbose.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
