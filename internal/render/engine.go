package render

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-studio/internal/model"
)

// templateFunc builds the unmeasured node tree for one template.
type templateFunc func(doc model.Document, th model.Theme) (*Node, float64)

// templates is the exhaustive dispatch table over the closed template set.
// Adding a template means adding an enum value and an entry here.
var templates = map[model.TemplateID]templateFunc{
	model.Template1: templateOne,
	model.Template2: templateTwo,
	model.Template3: templateThree,
}

// Render lays out the document with the selected template and theme.
// Unknown template ids fall back to Template1 deterministically. When
// availableWidth is positive the tree's Scale is availableWidth/designWidth;
// when it is zero the tree renders at natural size with Scale exactly 1
// (the export path). The design width is re-measured on every call, so
// content and font changes reflow before the scale is computed.
func Render(doc model.Document, th model.Theme, id model.TemplateID, availableWidth float64) (*Tree, error) {
	if availableWidth < 0 {
		return nil, fmt.Errorf("render: negative available width %v", availableWidth)
	}

	resolved := id.Resolve()
	build := templates[resolved]
	root, wrapWidth := build(doc, th)

	layout(root, wrapWidth)

	// The wrap width is the template's natural column width; unbreakable
	// content can push the measured width past it.
	designWidth := math.Max(wrapWidth, root.Width)

	scale := 1.0
	if availableWidth > 0 {
		scale = availableWidth / designWidth
	}

	return &Tree{
		Root:           root,
		Template:       resolved,
		DesignWidth:    designWidth,
		AvailableWidth: availableWidth,
		Scale:          scale,
	}, nil
}

// proficiencyTicks converts a 0-100 proficiency to a discrete 0-5 level by
// linear scaling. The discrete level is derived here and never stored.
func proficiencyTicks(p int) int {
	return int(math.Round(float64(model.ClampProficiency(p)) / 100 * 5))
}
