package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
)

func TestApplyPreset_Atomic(t *testing.T) {
	s := NewSelector(model.DefaultTheme())

	preset, ok := PresetByName("Graphite")
	require.True(t, ok)
	s.ApplyPreset(preset)

	assert.Equal(t, preset.Config, s.Live())
}

func TestSetField_UpdatesSingleLeaf(t *testing.T) {
	s := NewSelector(model.DefaultTheme())

	s.SetField("primaryColor", "#ff0000")

	assert.Equal(t, "#ff0000", s.Live().PrimaryColor)
	assert.Equal(t, model.DefaultTheme().AccentColor, s.Live().AccentColor)
}

func TestStage_DoesNotTouchLiveTheme(t *testing.T) {
	live := model.DefaultTheme()
	s := NewSelector(live)

	s.Stage(model.Theme{PrimaryColor: "#111111", AccentColor: "#222222", FontFamily: "Inter", Layout: model.LayoutCompact})

	assert.Equal(t, live, s.Live())
	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, "#111111", pending.PrimaryColor)
}

func TestConfirm_CommitsAndClearsPending(t *testing.T) {
	s := NewSelector(model.DefaultTheme())
	suggested := model.Theme{PrimaryColor: "#111111", AccentColor: "#222222", FontFamily: "Inter", Layout: model.LayoutCompact}
	s.Stage(suggested)

	require.True(t, s.Confirm())

	assert.Equal(t, suggested, s.Live())
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestConfirm_NothingStaged(t *testing.T) {
	s := NewSelector(model.DefaultTheme())
	assert.False(t, s.Confirm())
}

func TestReject_DiscardsPending(t *testing.T) {
	live := model.DefaultTheme()
	s := NewSelector(live)
	s.Stage(model.Theme{PrimaryColor: "#111111"})

	s.Reject()

	assert.Equal(t, live, s.Live())
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestPresetByName_Unknown(t *testing.T) {
	_, ok := PresetByName("NoSuchPreset")
	assert.False(t, ok)
}
