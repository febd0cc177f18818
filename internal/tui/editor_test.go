package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/wizard"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(m Editor, msgs ...tea.Msg) Editor {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Editor)
	}
	return m
}

// filled returns a document that passes the profile and contact steps.
func filled() model.Document {
	doc := model.New("Test Resume")
	doc = doc.UpdateSection(model.SectionProfile, "fullName", "Ada Lovelace")
	doc = doc.UpdateSection(model.SectionProfile, "designation", "Engineer")
	doc = doc.UpdateSection(model.SectionContact, "email", "ada@example.com")
	return doc
}

func TestEditor_TypingCommitsPerKeystroke(t *testing.T) {
	m := NewEditor(model.New("Test"))

	m = send(m, keyRunes("A"), keyRunes("d"), keyRunes("a"))

	assert.Equal(t, "Ada", m.Doc().Profile.FullName)
}

func TestEditor_BackspaceTrimsLastRune(t *testing.T) {
	m := NewEditor(model.New("Test"))

	m = send(m, keyRunes("Ab"), key(tea.KeyBackspace))

	assert.Equal(t, "A", m.Doc().Profile.FullName)
}

func TestEditor_NextBlockedByValidation(t *testing.T) {
	m := NewEditor(model.New("Test"))

	m = send(m, key(tea.KeyEnter))

	assert.Equal(t, wizard.StepProfile, m.wiz.Current().ID)
	assert.Contains(t, m.errMsg, "fullName")
}

func TestEditor_NextAdvancesWhenValid(t *testing.T) {
	m := NewEditor(filled())

	m = send(m, key(tea.KeyEnter))

	assert.Equal(t, wizard.StepContact, m.wiz.Current().ID)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, 0, m.focus)
}

func TestEditor_EscOnFirstStepQuits(t *testing.T) {
	m := NewEditor(model.New("Test"))

	next, cmd := m.Update(key(tea.KeyEsc))
	m = next.(Editor)

	assert.True(t, m.ExitRequested)
	require.NotNil(t, cmd)
}

func TestEditor_FocusMovesWithinStep(t *testing.T) {
	m := NewEditor(model.New("Test"))

	m = send(m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 2, m.focus)

	// Focus stops at the last field.
	m = send(m, key(tea.KeyDown))
	assert.Equal(t, 2, m.focus)

	m = send(m, key(tea.KeyUp))
	assert.Equal(t, 1, m.focus)
}

func TestEditor_ArrayEntryAddRemoveNavigate(t *testing.T) {
	m := NewEditor(filled())
	m = send(m, key(tea.KeyEnter), key(tea.KeyEnter)) // profile -> contact -> experience
	require.Equal(t, wizard.StepExperience, m.wiz.Current().ID)

	m = send(m, key(tea.KeyCtrlA))
	assert.Equal(t, 2, m.Doc().SectionLen(model.SectionExperience))
	assert.Equal(t, 1, m.entry[model.SectionExperience])

	m = send(m, keyRunes("Acme"))
	assert.Equal(t, "Acme", m.Doc().WorkExperience[1].Company)

	m = send(m, key(tea.KeyLeft))
	assert.Equal(t, 0, m.entry[model.SectionExperience])
	m = send(m, key(tea.KeyRight))
	assert.Equal(t, 1, m.entry[model.SectionExperience])

	m = send(m, key(tea.KeyCtrlD))
	assert.Equal(t, 1, m.Doc().SectionLen(model.SectionExperience))
	assert.Equal(t, 0, m.entry[model.SectionExperience])
}

func TestEditor_RemovingLastEntryReseedsPlaceholder(t *testing.T) {
	m := NewEditor(filled())
	m = send(m, key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, wizard.StepExperience, m.wiz.Current().ID)

	m = send(m, key(tea.KeyCtrlD))

	assert.Equal(t, 1, m.Doc().SectionLen(model.SectionExperience))
	assert.Equal(t, model.Experience{}, m.Doc().WorkExperience[0])
}

func TestEditor_ProficiencyIgnoresNonNumericInput(t *testing.T) {
	m := NewEditor(filled())
	for i := 0; i < 4; i++ { // advance to skills
		m = send(m, key(tea.KeyEnter))
	}
	require.Equal(t, wizard.StepSkills, m.wiz.Current().ID)

	m = send(m, key(tea.KeyDown)) // focus proficiency
	m = send(m, keyRunes("8"), keyRunes("5"))
	assert.Equal(t, 85, m.Doc().Skills[0].Proficiency)

	m = send(m, keyRunes("x"))
	assert.Equal(t, 85, m.Doc().Skills[0].Proficiency)
}

func TestEditor_TerminalStepOpensPreview(t *testing.T) {
	m := NewEditor(filled())
	for i := 0; i < 8; i++ {
		m = send(m, key(tea.KeyEnter))
	}

	assert.Equal(t, modePreview, m.mode)
	assert.Equal(t, wizard.StepAdditional, m.wiz.Current().ID)
}

func TestEditor_PreviewTemplateSwitchAndExport(t *testing.T) {
	m := NewEditor(filled())
	for i := 0; i < 8; i++ {
		m = send(m, key(tea.KeyEnter))
	}
	require.Equal(t, modePreview, m.mode)

	m = send(m, keyRunes("3"))
	assert.Equal(t, model.Template3, m.Template())

	m = send(m, key(tea.KeyEsc))
	assert.Equal(t, modeEdit, m.mode)

	// Reopen preview and request export.
	_, err := m.wiz.Next(m.Doc())
	require.NoError(t, err)
	m.mode = modePreview
	next, cmd := m.Update(keyRunes("e"))
	m = next.(Editor)
	assert.True(t, m.ExportRequested)
	require.NotNil(t, cmd)
}

func TestEditor_ThemePickerAppliesPreset(t *testing.T) {
	m := NewEditor(model.New("Test"))

	m = send(m, key(tea.KeyCtrlT))
	assert.Equal(t, modeThemes, m.mode)

	m = send(m, key(tea.KeyDown), key(tea.KeyEnter)) // Graphite
	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, theme.Presets()[1].Config, m.Doc().Presentation.Theme)
}

func TestEditor_ThemePickerEscDiscardsStagedSuggestion(t *testing.T) {
	m := NewEditor(model.New("Test"))
	m.themes.Stage(model.Theme{PrimaryColor: "#111111"})

	m = send(m, key(tea.KeyCtrlT), key(tea.KeyEsc))

	_, staged := m.themes.Pending()
	assert.False(t, staged)
	assert.Equal(t, modeEdit, m.mode)
}

func TestEditor_ThemePickerConfirmsStagedSuggestion(t *testing.T) {
	m := NewEditor(model.New("Test"))
	suggested := model.Theme{PrimaryColor: "#111111", AccentColor: "#222222", FontFamily: "Inter", Layout: model.LayoutClassic}
	m.themes.Stage(suggested)

	m = send(m, key(tea.KeyCtrlT), keyRunes("c"))

	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, suggested, m.Doc().Presentation.Theme)
}

func TestEditor_InterestsEditThroughAdditionalStep(t *testing.T) {
	m := NewEditor(filled())
	for i := 0; i < 7; i++ {
		m = send(m, key(tea.KeyEnter))
	}
	require.Equal(t, wizard.StepAdditional, m.wiz.Current().ID)

	m = send(m, key(tea.KeyDown), key(tea.KeyDown)) // focus interest
	m = send(m, keyRunes("chess"))

	assert.Equal(t, "chess", m.Doc().Interests[0])
}

func TestEditor_ViewShowsValidationError(t *testing.T) {
	m := NewEditor(model.New("Test"))
	m = send(m, key(tea.KeyEnter))

	view := m.View()
	assert.Contains(t, view, "fullName")
}
