package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDraftPrompt_IncludesCandidateFacts(t *testing.T) {
	prompt := BuildDraftPrompt(DraftInput{
		Name:   "Ada Lovelace",
		Role:   "Staff Engineer",
		Skills: []string{"Go", "PostgreSQL"},
	})

	assert.Contains(t, prompt, "Ada Lovelace")
	assert.Contains(t, prompt, "Staff Engineer")
	assert.Contains(t, prompt, "- Go")
	assert.Contains(t, prompt, "- PostgreSQL")
	assert.Contains(t, prompt, `"proficiency"`)
}

func TestBuildDraftPrompt_OmitsEmptySections(t *testing.T) {
	prompt := BuildDraftPrompt(DraftInput{Name: "Ada"})

	assert.NotContains(t, prompt, "Experience:\n")
	assert.NotContains(t, prompt, "Projects:\n")
}

func TestCleanJSONBlock(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                  `{"a":1}`,
		"```json\n{\"a\":1}\n```":    `{"a":1}`,
		"```\n{\"a\":1}\n```":        `{"a":1}`,
		"  \n{\"a\":1}\n  ":          `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanJSONBlock(in))
	}
}
