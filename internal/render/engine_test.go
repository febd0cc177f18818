package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
)

func sampleDoc() model.Document {
	doc := model.New("test")
	doc = doc.UpdateSection(model.SectionProfile, "fullName", "Ada Lovelace")
	doc = doc.UpdateSection(model.SectionProfile, "designation", "Software Engineer")
	doc = doc.UpdateSection(model.SectionProfile, "summary", "Engineer with a decade of experience building analytical engines.")
	doc = doc.UpdateSection(model.SectionContact, "email", "ada@example.com")
	doc = doc.UpdateArrayItem(model.SectionExperience, 0, "company", "Analytical Engines Ltd")
	doc = doc.UpdateArrayItem(model.SectionExperience, 0, "role", "Lead Engineer")
	doc = doc.UpdateArrayItem(model.SectionSkills, 0, "name", "Go")
	doc = doc.UpdateProficiency(model.SectionSkills, 0, 90)
	return doc
}

func TestRender_NoAvailableWidthMeansScaleOne(t *testing.T) {
	tree, err := Render(sampleDoc(), model.DefaultTheme(), model.Template1, 0)

	require.NoError(t, err)
	assert.Equal(t, 1.0, tree.Scale)
	assert.Greater(t, tree.DesignWidth, 0.0)
}

func TestRender_ScaleAtDesignWidthIsExactlyOne(t *testing.T) {
	doc := sampleDoc()
	th := model.DefaultTheme()

	natural, err := Render(doc, th, model.Template1, 0)
	require.NoError(t, err)

	scaled, err := Render(doc, th, model.Template1, natural.DesignWidth)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scaled.Scale)

	half, err := Render(doc, th, model.Template1, natural.DesignWidth/2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, half.Scale)
}

func TestRender_NegativeWidthRejected(t *testing.T) {
	_, err := Render(sampleDoc(), model.DefaultTheme(), model.Template1, -10)
	assert.Error(t, err)
}

func TestRender_UnknownTemplateFallsBack(t *testing.T) {
	tree, err := Render(sampleDoc(), model.DefaultTheme(), model.TemplateID(42), 0)

	require.NoError(t, err)
	assert.Equal(t, model.Template1, tree.Template)
}

func TestRender_EmptyExperienceOmitsHeadingInAllTemplates(t *testing.T) {
	doc := sampleDoc().RemoveArrayItem(model.SectionExperience, 0)
	require.Empty(t, doc.WorkExperience)

	for _, id := range []model.TemplateID{model.Template1, model.Template2, model.Template3} {
		tree, err := Render(doc, model.DefaultTheme(), id, 0)
		require.NoError(t, err)
		assert.False(t, tree.HasHeading("WORK EXPERIENCE"), "template %d rendered an orphan experience heading", id)
		assert.False(t, tree.HasHeading("Work Experience"), "template %d rendered an orphan experience heading", id)
	}
}

func TestRender_PopulatedSectionsHaveHeadings(t *testing.T) {
	tree, err := Render(sampleDoc(), model.DefaultTheme(), model.Template1, 0)
	require.NoError(t, err)

	assert.True(t, tree.HasHeading("Work Experience"))
	assert.True(t, tree.HasHeading("Skills"))
}

func TestRender_DesignWidthReflowsWithContent(t *testing.T) {
	doc := sampleDoc()
	th := model.DefaultTheme()

	base, err := Render(doc, th, model.Template1, 0)
	require.NoError(t, err)

	// An unbreakable run wider than the wrap width must push the measured
	// design width out.
	long := doc.UpdateArrayItem(model.SectionProjects, 0, "title",
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	grown, err := Render(long, th, model.Template1, 0)
	require.NoError(t, err)
	assert.Greater(t, grown.DesignWidth, base.DesignWidth)
}

func TestRender_ThemeColorsFlowIntoNodes(t *testing.T) {
	th := model.Theme{PrimaryColor: "#123456", AccentColor: "#abcdef", FontFamily: "Inter", Layout: model.LayoutModern}

	for _, id := range []model.TemplateID{model.Template1, model.Template2, model.Template3} {
		tree, err := Render(sampleDoc(), th, id, 0)
		require.NoError(t, err)

		var sawPrimary, sawFont bool
		tree.Walk(func(n *Node) {
			if n.Style.Color == "#123456" || n.Style.Background == "#123456" {
				sawPrimary = true
			}
			if n.Style.FontFamily == "Inter" {
				sawFont = true
			}
		})
		assert.True(t, sawPrimary, "template %d ignored the primary color", id)
		assert.True(t, sawFont, "template %d ignored the font family", id)
	}
}

func TestProficiencyTicks_LinearScaling(t *testing.T) {
	cases := []struct {
		proficiency int
		ticks       int
	}{
		{0, 0}, {10, 1}, {50, 3}, {89, 4}, {90, 5}, {100, 5}, {150, 5}, {-5, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ticks, proficiencyTicks(tc.proficiency), "proficiency %d", tc.proficiency)
	}
}
