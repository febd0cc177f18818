// Package theme manages the resume theme configuration: direct edits, named
// presets applied atomically, and AI-suggested themes staged for explicit
// confirmation. A theme is never template-specific; every template accepts
// every configuration.
package theme

import "github.com/jonathan/resume-studio/internal/model"

// Preset is a named bundle of theme values applied as one unit.
type Preset struct {
	Name   string
	Config model.Theme
}

// Presets returns the fixed set of named presets offered by the editor.
func Presets() []Preset {
	return []Preset{
		{Name: "Ocean", Config: model.Theme{PrimaryColor: "#0d47a1", AccentColor: "#64b5f6", FontFamily: "Poppins", Layout: model.LayoutModern}},
		{Name: "Graphite", Config: model.Theme{PrimaryColor: "#212121", AccentColor: "#757575", FontFamily: "Inter", Layout: model.LayoutClassic}},
		{Name: "Orchid", Config: model.Theme{PrimaryColor: "#6d28d9", AccentColor: "#f472b6", FontFamily: "Poppins", Layout: model.LayoutCreative}},
		{Name: "Forest", Config: model.Theme{PrimaryColor: "#1b5e20", AccentColor: "#81c784", FontFamily: "Lato", Layout: model.LayoutCompact}},
	}
}

// PresetByName looks up a preset; ok is false when the name is unknown.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Selector owns the live theme and the staging slot for AI suggestions. All
// three change sources (field edits, presets, suggestions) converge on the
// same live config, but a suggestion only reaches it through Confirm.
type Selector struct {
	live    model.Theme
	pending *model.Theme
}

// NewSelector starts a selector from the given live theme.
func NewSelector(live model.Theme) *Selector {
	return &Selector{live: live}
}

// Live returns the committed theme.
func (s *Selector) Live() model.Theme { return s.live }

// Pending returns the staged suggestion, or ok=false when nothing is staged.
func (s *Selector) Pending() (model.Theme, bool) {
	if s.pending == nil {
		return model.Theme{}, false
	}
	return *s.pending, true
}

// SetField updates one leaf of the live theme directly.
func (s *Selector) SetField(key, value string) {
	switch key {
	case "primaryColor":
		s.live.PrimaryColor = value
	case "accentColor":
		s.live.AccentColor = value
	case "fontFamily":
		s.live.FontFamily = value
	case "layout":
		s.live.Layout = model.Layout(value)
	}
}

// ApplyPreset replaces the whole live theme with the preset bundle.
func (s *Selector) ApplyPreset(p Preset) {
	s.live = p.Config
}

// Stage records an AI-suggested theme without touching the live config.
// A later suggestion replaces an earlier unconfirmed one.
func (s *Selector) Stage(suggestion model.Theme) {
	copy := suggestion
	s.pending = &copy
}

// Confirm commits the staged suggestion into the live theme. It reports false
// when nothing was staged.
func (s *Selector) Confirm() bool {
	if s.pending == nil {
		return false
	}
	s.live = *s.pending
	s.pending = nil
	return true
}

// Reject discards the staged suggestion.
func (s *Selector) Reject() {
	s.pending = nil
}
