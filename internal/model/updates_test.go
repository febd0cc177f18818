package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsPlaceholders(t *testing.T) {
	doc := New("My Resume")

	assert.Equal(t, "My Resume", doc.Title)
	for _, section := range OrderedSections() {
		assert.Equal(t, 1, doc.SectionLen(section), "section %s should start with a placeholder", section)
	}
	assert.Equal(t, Template1, doc.Presentation.TemplateID)
}

func TestUpdateSection_ReadBack(t *testing.T) {
	doc := New("test")

	next := doc.UpdateSection(SectionProfile, "fullName", "Ada Lovelace")

	assert.Equal(t, "Ada Lovelace", next.Profile.FullName)
	// Original snapshot untouched.
	assert.Equal(t, "", doc.Profile.FullName)
}

func TestUpdateSection_UntouchedFieldsKeepIdentity(t *testing.T) {
	doc := New("test")
	doc = doc.UpdateArrayItem(SectionSkills, 0, "name", "Go")

	next := doc.UpdateSection(SectionContact, "email", "ada@example.com")

	assert.Equal(t, "ada@example.com", next.Contact.Email)
	// Untouched slices share backing arrays with the original snapshot.
	require.NotEmpty(t, doc.Skills)
	assert.Equal(t, &doc.Skills[0], &next.Skills[0])
	assert.Equal(t, &doc.WorkExperience[0], &next.WorkExperience[0])
	assert.Equal(t, doc.Profile, next.Profile)
}

func TestUpdateArrayItem_CopiesOnlyTargetSection(t *testing.T) {
	doc := New("test")

	next := doc.UpdateArrayItem(SectionExperience, 0, "company", "Initech")

	assert.Equal(t, "Initech", next.WorkExperience[0].Company)
	assert.Equal(t, "", doc.WorkExperience[0].Company)
	// Sibling sections retain identity.
	assert.Equal(t, &doc.Education[0], &next.Education[0])
}

func TestUpdateArrayItem_OutOfRangeIsNoOp(t *testing.T) {
	doc := New("test")

	assert.Equal(t, doc, doc.UpdateArrayItem(SectionExperience, 5, "company", "x"))
	assert.Equal(t, doc, doc.UpdateArrayItem(SectionExperience, -1, "company", "x"))
}

func TestAddThenRemove_RestoresSequence(t *testing.T) {
	doc := New("test")
	doc = doc.UpdateArrayItem(SectionSkills, 0, "name", "Go")

	added := doc.AddArrayItem(SectionSkills)
	require.Equal(t, 2, len(added.Skills))

	restored := added.RemoveArrayItem(SectionSkills, 1)
	assert.Equal(t, doc.Skills, restored.Skills)
}

func TestRemoveArrayItem_LastElementAllowed(t *testing.T) {
	doc := New("test")

	next := doc.RemoveArrayItem(SectionExperience, 0)

	assert.Empty(t, next.WorkExperience)
	// Wizard re-seeds the placeholder, the model does not.
	reseeded := next.SeedPlaceholder(SectionExperience)
	assert.Equal(t, 1, len(reseeded.WorkExperience))
}

func TestUpdateProficiency_Clamped(t *testing.T) {
	doc := New("test")

	over := doc.UpdateProficiency(SectionSkills, 0, 150)
	under := doc.UpdateProficiency(SectionLanguages, 0, -10)

	assert.Equal(t, 100, over.Skills[0].Proficiency)
	assert.Equal(t, 0, under.Languages[0].Proficiency)
}

func TestTemplateID_Resolve(t *testing.T) {
	assert.Equal(t, Template1, TemplateID(0).Resolve())
	assert.Equal(t, Template1, TemplateID(99).Resolve())
	assert.Equal(t, Template2, Template2.Resolve())
	assert.Equal(t, Template3, Template3.Resolve())
}
