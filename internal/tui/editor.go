package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/wizard"
)

// mode is the editor's top-level screen.
type mode int

const (
	modeEdit mode = iota
	modePreview
	modeThemes
)

// Editor is the bubbletea model hosting the wizard over one document. The
// document is an immutable snapshot; every edit swaps it for the next one.
type Editor struct {
	doc      model.Document
	wiz      *wizard.Wizard
	themes   *theme.Selector
	template model.TemplateID

	mode   mode
	fields []fieldSpec
	focus  int
	entry  map[model.Section]int

	themeCursor int
	width       int
	errMsg      string

	// ExitRequested is set when the user backed out of the first step or quit.
	ExitRequested bool
	// ExportRequested is set when the user asked for a PDF from the preview.
	ExportRequested bool
}

// NewEditor starts the editor on the first wizard step.
func NewEditor(doc model.Document) Editor {
	w := wizard.New()
	return Editor{
		doc:      doc,
		wiz:      w,
		themes:   theme.NewSelector(doc.Presentation.Theme),
		template: doc.Presentation.TemplateID.Resolve(),
		fields:   stepFields(w.Current().ID),
		entry:    make(map[model.Section]int),
		width:    80,
	}
}

// Doc returns the current document snapshot with the live theme folded in.
func (m Editor) Doc() model.Document {
	next := m.doc
	next.Presentation.Theme = m.themes.Live()
	next.Presentation.TemplateID = m.template
	return next
}

// Template returns the selected template.
func (m Editor) Template() model.TemplateID { return m.template }

func (m Editor) Init() tea.Cmd {
	return nil
}

func (m Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modePreview:
			return m.updatePreview(msg)
		case modeThemes:
			return m.updateThemes(msg)
		default:
			return m.updateEdit(msg)
		}
	}
	return m, nil
}

func (m Editor) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := m.fields[m.focus]
	index := m.entry[field.Section]

	switch msg.String() {
	case "ctrl+c":
		m.ExitRequested = true
		return m, tea.Quit
	case "esc":
		if m.wiz.Back() == wizard.SignalExitEditor {
			m.ExitRequested = true
			return m, tea.Quit
		}
		m.enterStep()
		return m, nil
	case "enter":
		signal, err := m.wiz.Next(m.doc)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		if signal == wizard.SignalRequestPreview {
			m.mode = modePreview
			return m, nil
		}
		m.enterStep()
		return m, nil
	case "up", "shift+tab":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil
	case "down", "tab":
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
		return m, nil
	case "left":
		if !field.scalar() && index > 0 {
			m.entry[field.Section] = index - 1
		}
		return m, nil
	case "right":
		if !field.scalar() && index < m.doc.SectionLen(field.Section)-1 {
			m.entry[field.Section] = index + 1
		}
		return m, nil
	case "ctrl+a":
		if !field.scalar() {
			m.doc = m.doc.AddArrayItem(field.Section)
			m.entry[field.Section] = m.doc.SectionLen(field.Section) - 1
		}
		return m, nil
	case "ctrl+d":
		if !field.scalar() {
			m.doc = m.doc.RemoveArrayItem(field.Section, index).SeedPlaceholder(field.Section)
			if index >= m.doc.SectionLen(field.Section) {
				m.entry[field.Section] = m.doc.SectionLen(field.Section) - 1
			}
		}
		return m, nil
	case "ctrl+t":
		m.mode = modeThemes
		m.themeCursor = 0
		return m, nil
	case "backspace":
		value := fieldValue(m.doc, field, index)
		if value != "" {
			runes := []rune(value)
			m.doc = applyField(m.doc, field, index, string(runes[:len(runes)-1]))
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		value := fieldValue(m.doc, field, index) + string(msg.Runes)
		if msg.Type == tea.KeySpace {
			value = fieldValue(m.doc, field, index) + " "
		}
		m.doc = applyField(m.doc, field, index, value)
	}
	return m, nil
}

func (m Editor) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.ExitRequested = true
		return m, tea.Quit
	case "esc":
		m.mode = modeEdit
		return m, nil
	case "1":
		m.template = model.Template1
	case "2":
		m.template = model.Template2
	case "3":
		m.template = model.Template3
	case "e":
		m.ExportRequested = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Editor) updateThemes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := theme.Presets()
	switch msg.String() {
	case "ctrl+c":
		m.ExitRequested = true
		return m, tea.Quit
	case "esc":
		m.themes.Reject()
		m.mode = modeEdit
		return m, nil
	case "up", "k":
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case "down", "j":
		if m.themeCursor < len(presets)-1 {
			m.themeCursor++
		}
	case "enter":
		m.themes.ApplyPreset(presets[m.themeCursor])
		m.mode = modeEdit
	case "c":
		if m.themes.Confirm() {
			m.mode = modeEdit
		}
	}
	return m, nil
}

// enterStep refreshes per-step state after the wizard moved.
func (m *Editor) enterStep() {
	m.fields = stepFields(m.wiz.Current().ID)
	m.focus = 0
	m.errMsg = ""
}

func (m Editor) View() string {
	switch m.mode {
	case modePreview:
		return m.viewPreview()
	case modeThemes:
		return m.viewThemes()
	default:
		return m.viewEdit()
	}
}

func (m Editor) viewEdit() string {
	var b strings.Builder
	step := m.wiz.Current()

	b.WriteString(styleTitle.Render(fmt.Sprintf("%s  (%d%%)", step.Title, m.wiz.Progress())))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("type to edit  tab/↑↓ fields  ←/→ entries  ^a add  ^d remove  ^t themes  enter next  esc back"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		index := m.entry[f.Section]
		value := fieldValue(m.doc, f, index)

		cursor := "  "
		if i == m.focus {
			cursor = "▸ "
		}

		label := f.Label
		if !f.scalar() {
			label = fmt.Sprintf("%s [%d/%d]", f.Label, index+1, m.doc.SectionLen(f.Section))
		}

		line := fmt.Sprintf("%s%s: %s", cursor, styleLabel.Render(label), styleValue.Render(value))
		if i == m.focus {
			line = styleSelected.Render(fmt.Sprintf("%s%s: ", cursor, label)) + styleValue.Render(value) + styleSelected.Render("█")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Editor) viewPreview() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Preview"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("1/2/3 template  e export PDF  esc edit  q quit"))
	b.WriteString("\n\n")

	tree, err := render.Render(m.Doc(), m.themes.Live(), m.template, float64(m.width))
	if err != nil {
		b.WriteString(styleError.Render("✗ " + err.Error()))
		return b.String()
	}
	b.WriteString(Preview(tree, m.width))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("template %d  scale %.2f", m.template, tree.Scale)))
	return b.String()
}

func (m Editor) viewThemes() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Themes"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ apply  c confirm staged  esc back"))
	b.WriteString("\n\n")

	live := m.themes.Live()
	for i, p := range theme.Presets() {
		cursor := "  "
		if i == m.themeCursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s %s / %s  %s", cursor, p.Name, p.Config.PrimaryColor, p.Config.AccentColor, p.Config.FontFamily)
		switch {
		case i == m.themeCursor:
			b.WriteString(styleSelected.Render(line))
		case p.Config == live:
			b.WriteString(styleSuccess.Render(line))
		default:
			b.WriteString(styleValue.Render(line))
		}
		b.WriteString("\n")
	}

	if pending, ok := m.themes.Pending(); ok {
		b.WriteString("\n")
		b.WriteString(styleWarning.Render(fmt.Sprintf("staged suggestion: %s / %s (c to confirm, esc to discard)",
			pending.PrimaryColor, pending.AccentColor)))
		b.WriteString("\n")
	}
	return b.String()
}
