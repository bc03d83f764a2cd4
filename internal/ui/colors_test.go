package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorMuted,
	}

	seen := make(map[lipgloss.Color]bool)
	for _, color := range colors {
		assert.NotEmpty(t, string(color))
		assert.False(t, seen[color], "duplicate color %s", color)
		seen[color] = true
	}
}

func TestStylesAreFunctional(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Muted", MutedStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render("text"), "text")
		})
	}
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccess(&buf, "Wrote .cw.yaml")

	assert.Contains(t, buf.String(), SymbolSuccess)
	assert.Contains(t, buf.String(), "Wrote .cw.yaml")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, "config watch disabled")

	assert.Contains(t, buf.String(), SymbolWarning)
	assert.Contains(t, buf.String(), "config watch disabled")
}

func TestDisableColors(t *testing.T) {
	assert.NotPanics(t, func() {
		DisableColors()
	})

	assert.Equal(t, "plain", SuccessStyle().Render("plain"))
}
