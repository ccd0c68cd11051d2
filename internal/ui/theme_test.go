package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/dexview/internal/state"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"Nightfox", "Kanagawa", "Slate"}, ThemeNames())
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, "Kanagawa", NextTheme("Nightfox"))
	assert.Equal(t, "Slate", NextTheme("Kanagawa"))
	assert.Equal(t, "Nightfox", NextTheme("Slate"))
	assert.Equal(t, "Nightfox", NextTheme("Unknown"))
}

func TestGetThemeFallsBack(t *testing.T) {
	assert.Equal(t, "Slate", GetTheme("Slate").Name)
	assert.Equal(t, "Nightfox", GetTheme("Unknown").Name)
}

func TestEveryThemeColorsEveryPhase(t *testing.T) {
	phases := []state.Phase{state.PhaseEmpty, state.PhaseLoading, state.PhaseSuccess, state.PhaseFailure}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, phase := range phases {
			assert.NotEmpty(t, th.PhaseColors[phase.String()], "%s has no color for %s", name, phase)
		}
	}
}

func TestEveryThemeFillsPalette(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, value := range map[string]string{
			"Background": th.Background,
			"Surface":    th.Surface,
			"SurfaceAlt": th.SurfaceAlt,
			"Text":       th.Text,
			"Success":    th.Success,
			"Danger":     th.Danger,
			"Info":       th.Info,
		} {
			assert.NotEmpty(t, value, "%s.%s", name, field)
		}
	}
}
