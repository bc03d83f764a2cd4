package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")

	// Used for time windows and the ruler.
	ColorGraph = lipgloss.Color("#00FFFF")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	ToolbarStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	ToolbarItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// Sidebar panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorAccent)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	EntryStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	EntryCursorStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorBorder).
				Bold(true)

	EntrySelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy).
				Bold(true)

	// Graph cards. No background here, each line handles its own.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	CardCursorStyle = CardStyle.
			BorderForeground(ColorAccent)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorHealthy)

	GraphTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	WindowStyle = lipgloss.NewStyle().
			Foreground(ColorGraph)

	RulerStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FlashStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	// Modals
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	ErrorModalStyle = ModalStyle.
			BorderForeground(ColorCritical)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true).
			MarginBottom(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim)
)

// Status glyphs used on graph cards.
const (
	GlyphSelected = "◉"
	GlyphIdle     = "○"
	GlyphLoaded   = "▰"
	GlyphWaiting  = "◌"
	GlyphRuler    = "┃"
	GlyphCursor   = "›"
)
