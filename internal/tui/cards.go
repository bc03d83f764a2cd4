package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/cw/internal/dashboard"
)

// graphCard is what a widget needs to be drawn as more than its URL.
type graphCard interface {
	Title() string
	Start() time.Time
	End() time.Time
	Loaded() bool
}

// positioned widgets learn their row so lazy loading can compare it with
// the scroll position.
type positioned interface {
	SetTop(row int)
}

const cardTimeLayout = "Jan 02 15:04"

// refreshGrid re-renders the cards into the viewport, records where each one
// starts, and publishes the visible bottom on the scroll topic when it moved.
func (m *Model) refreshGrid() {
	if !m.viewportReady {
		return
	}

	grid := m.dash.Grid
	newGeneration := grid.Generation() != m.generation
	if newGeneration {
		m.generation = grid.Generation()
		m.graphCursor = 0
		m.viewport.GotoTop()
	}
	m.graphCursor = clamp(m.graphCursor, len(grid.Widgets()))

	m.layoutGrid()
	if m.followCursor {
		m.ensureCursorVisible()
		m.followCursor = false
	}

	bottom := m.viewport.YOffset + m.viewport.Height
	if newGeneration || m.viewport.YOffset != m.lastOffset || bottom != m.lastBottom {
		m.lastOffset = m.viewport.YOffset
		m.lastBottom = bottom
		m.dash.Scroll.Publish(bottom)
		// Lazy cards that just loaded render differently.
		m.layoutGrid()
	}
}

// layoutGrid renders every card and arranges them in rows.
func (m *Model) layoutGrid() {
	widgets := m.dash.Grid.Widgets()
	if len(widgets) == 0 {
		m.cardTops, m.cardHeights = nil, nil
		m.viewport.SetContent(MutedStyle.Render("\n  Pick a host and a plugin to show its graphs."))
		return
	}

	width := m.cardWidth()
	m.perRow = 1
	if m.dash.Grid.View() == dashboard.ViewGrid {
		// border + margin
		m.perRow = m.viewport.Width / (width + 3)
		if m.perRow < 1 {
			m.perRow = 1
		}
	}

	m.cardTops = make([]int, len(widgets))
	m.cardHeights = make([]int, len(widgets))

	var rows []string
	top := 0
	for i := 0; i < len(widgets); i += m.perRow {
		end := i + m.perRow
		if end > len(widgets) {
			end = len(widgets)
		}

		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			m.setTop(widgets[j], top)
			m.cardTops[j] = top
			card := m.renderCard(widgets[j], width, j == m.graphCursor)
			m.cardHeights[j] = lipgloss.Height(card)
			cards = append(cards, card)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		top += lipgloss.Height(row)
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) setTop(w dashboard.Widget, top int) {
	if p, ok := w.(positioned); ok {
		p.SetTop(top)
	}
}

// cardWidth is the inner width of one card.
func (m Model) cardWidth() int {
	if m.dash.Grid.View() == dashboard.ViewGrid {
		return gridCardWidth
	}
	w := m.viewport.Width - 5
	if w < 20 {
		w = 20
	}
	return w
}

// ensureCursorVisible scrolls the viewport so the cursor card is in view.
func (m *Model) ensureCursorVisible() {
	if m.graphCursor >= len(m.cardTops) {
		return
	}
	top := m.cardTops[m.graphCursor]
	bottom := top + m.cardHeights[m.graphCursor]

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// renderCard renders one graph card.
func (m Model) renderCard(w dashboard.Widget, width int, cursor bool) string {
	style := CardStyle
	switch {
	case cursor && m.focus == PaneGraphs:
		style = CardCursorStyle
	case w.Selected():
		style = CardSelectedStyle
	}

	mark := MutedStyle.Render(GlyphIdle)
	if w.Selected() {
		mark = EntrySelectedStyle.Render(GlyphSelected)
	}

	c, ok := w.(graphCard)
	if !ok {
		return style.Width(width).Render(mark + " " + truncate(w.URL(), width-2))
	}

	lines := []string{
		mark + " " + GraphTitleStyle.Render(truncate(c.Title(), width-2)),
		WindowStyle.Render(formatWindow(c.Start(), c.End())),
	}
	if m.dash.Ruler.Visible() {
		lines = append(lines, renderRuler(m.dash.Ruler.Position(), width, c.Start(), c.End()))
	}
	if c.Loaded() {
		lines = append(lines, LabelStyle.Render(GlyphLoaded+" "+truncate(w.ImgSrc(), width-2)))
	} else {
		lines = append(lines, MutedStyle.Render(GlyphWaiting+" scroll to load"))
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderRuler draws the ruler mark at column pos with the instant it points
// at, mapping the card width onto the graph window.
func renderRuler(pos, width int, start, end time.Time) string {
	if pos > width-1 {
		pos = width - 1
	}
	at := start
	if width > 1 {
		at = start.Add(time.Duration(float64(end.Sub(start)) * float64(pos) / float64(width-1)))
	}

	label := " " + at.Format(cardTimeLayout)
	line := strings.Repeat(" ", pos) + GlyphRuler
	if pos+1+len(label) <= width {
		line += label
	} else if pos >= len(label) {
		line = strings.Repeat(" ", pos-len(label)) + at.Format(cardTimeLayout) + " " + GlyphRuler
	}
	return RulerStyle.Render(line)
}

// formatWindow renders "Mar 15 12:00 → Mar 16 12:00 (1d)".
func formatWindow(start, end time.Time) string {
	return fmt.Sprintf("%s → %s (%s)", start.Format(cardTimeLayout), end.Format(cardTimeLayout), formatSpan(end.Sub(start)))
}

// formatSpan renders a duration in its largest whole unit.
func formatSpan(d time.Duration) string {
	const (
		day  = 24 * time.Hour
		week = 7 * day
		year = 365 * day
	)
	switch {
	case d >= year && d%year == 0:
		return fmt.Sprintf("%dy", d/year)
	case d >= week && d%week == 0:
		return fmt.Sprintf("%dw", d/week)
	case d >= day:
		return fmt.Sprintf("%dd", d/day)
	case d >= time.Hour:
		return fmt.Sprintf("%dh", d/time.Hour)
	default:
		return fmt.Sprintf("%dm", d/time.Minute)
	}
}
