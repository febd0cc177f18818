package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/render"
)

func TestPreview_NilTreeIsEmpty(t *testing.T) {
	assert.Empty(t, Preview(nil, 80))
	assert.Empty(t, Preview(&render.Tree{}, 80))
}

func TestPreview_RealizesHeadingsAndText(t *testing.T) {
	tree := &render.Tree{
		Root: &render.Node{
			Kind: render.KindColumn,
			Children: []*render.Node{
				{Kind: render.KindHeading, Text: "Work Experience", Style: render.Style{Uppercase: true}},
				{Kind: render.KindText, Text: "Acme Corp"},
			},
		},
	}

	out := Preview(tree, 80)

	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Acme Corp")
}

func TestPreview_TickBarShowsFilledAndEmptyDots(t *testing.T) {
	tree := &render.Tree{
		Root: &render.Node{Kind: render.KindTickBar, Ticks: 3, MaxTicks: 5},
	}

	out := Preview(tree, 80)

	assert.Equal(t, 3, strings.Count(out, "●"))
	assert.Equal(t, 2, strings.Count(out, "○"))
}

func TestPreview_DividerSpansWidth(t *testing.T) {
	tree := &render.Tree{
		Root: &render.Node{Kind: render.KindDivider},
	}

	out := Preview(tree, 20)

	assert.Equal(t, 20, strings.Count(out, "─"))
}

func TestPreview_RenderedDocumentSurvivesRoundTrip(t *testing.T) {
	doc := model.New("Test")
	doc = doc.UpdateSection(model.SectionProfile, "fullName", "Ada Lovelace")
	doc = doc.UpdateSection(model.SectionProfile, "designation", "Engineer")
	doc = doc.UpdateSection(model.SectionContact, "email", "ada@example.com")

	tree, err := render.Render(doc, model.DefaultTheme(), model.Template1, 80)
	require.NoError(t, err)

	out := Preview(tree, 80)
	assert.Contains(t, strings.ToUpper(out), "ADA LOVELACE")
	assert.Contains(t, out, "ada@example.com")
}
