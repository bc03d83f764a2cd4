package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders a centered box with every key binding.
func (m Model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true

	lines := []string{
		ModalTitleStyle.Render("Keyboard Shortcuts"),
		h.FullHelpView(m.keys.FullHelp()),
		"",
		LabelStyle.Render("Press ? to close"),
	}
	box := ModalStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
