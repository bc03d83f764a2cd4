package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/cw/internal/dashboard"
	"github.com/rileyhilliard/cw/internal/util"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.viewport.View())

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderToolbar())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("cw dashboard")

	grid := m.dash.Grid
	hosts := len(m.dash.Hosts.Entries())
	graphs := len(grid.Widgets())
	stats := LabelStyle.Render(fmt.Sprintf(" | %s | %d %s | %d %s | %d selected",
		m.server,
		hosts, util.Pluralize(hosts, "host", "hosts"),
		graphs, util.Pluralize(graphs, "graph", "graphs"),
		len(grid.Selection())))

	line := title + stats
	if m.runner.busy() {
		line += " " + m.spinner.View()
	}
	if m.flash != "" {
		line += "  " + FlashStyle.Render(m.flash)
	}
	return HeaderStyle.Render(line)
}

// renderToolbar renders the visible toolbar section.
func (m Model) renderToolbar() string {
	opts := m.dash.Options
	var items []string

	switch m.dash.Toolbar.Item() {
	case dashboard.ItemPanZoom:
		items = []string{"< back", "> forward", "+ zoom in", "- zoom out"}
	case dashboard.ItemTimespan:
		items = []string{"1 hour", "2 day", "3 week", "4 month", "5 year", "d dates"}
	default:
		items = []string{
			"a all",
			"n none",
			"g " + opts.View(),
			"z lazy " + onOff(opts.Lazy()),
			"R ruler " + onOff(opts.Ruler()),
			"D defs",
		}
	}

	section := ToolbarItemStyle.Render(string(m.dash.Toolbar.Item()))
	return ToolbarStyle.Render(section + "  " + strings.Join(items, " | ") + MutedStyle.Render("   t next"))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// renderSidebar stacks the host and plugin panels.
func (m Model) renderSidebar() string {
	height := m.viewport.Height
	hostHeight := height / 2
	pluginHeight := height - hostHeight

	hosts := m.dash.Hosts
	hostPanel := m.renderPanel("Hosts", m.hostFilter.View(), hosts.Visible(), hosts.Selected(),
		m.hostCursor, m.focus == PaneHosts, hostHeight, m.filtering && m.focus == PaneHosts || hosts.Query() != "")

	var pluginPanel string
	if p := hosts.Plugins(); p != nil {
		pluginPanel = m.renderPanel("Plugins", m.pluginFilter.View(), p.Visible(), p.Selected(),
			m.pluginCursor, m.focus == PanePlugins, pluginHeight, m.filtering && m.focus == PanePlugins || p.Query() != "")
	} else {
		pluginPanel = m.renderPanel("Plugins", "", nil, "", 0, m.focus == PanePlugins, pluginHeight, false)
	}

	return lipgloss.JoinVertical(lipgloss.Left, hostPanel, pluginPanel)
}

// renderPanel renders one list with its cursor and selection. Long lists
// scroll to keep the cursor in view.
func (m Model) renderPanel(title, filter string, entries []dashboard.Pair, selected string, cursor int, focused bool, height int, showFilter bool) string {
	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}
	inner := sidebarWidth - 4

	lines := []string{PanelTitleStyle.Render(fmt.Sprintf("%s (%d)", title, len(entries)))}
	if showFilter {
		lines = append(lines, filter)
	}

	rows := height - 2 - len(lines)
	if rows < 1 {
		rows = 1
	}
	first := 0
	if cursor >= rows {
		first = cursor - rows + 1
	}

	if len(entries) == 0 {
		lines = append(lines, MutedStyle.Render("(none)"))
	}
	for i := first; i < len(entries) && i < first+rows; i++ {
		e := entries[i]
		label := truncate(e.Name, inner-2)
		switch {
		case focused && i == cursor:
			label = EntryCursorStyle.Render(GlyphCursor + " " + label)
		case e.URL == selected:
			label = EntrySelectedStyle.Render("  " + label)
		default:
			label = EntryStyle.Render("  " + label)
		}
		lines = append(lines, label)
	}

	return style.Width(inner + 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderOverlay centers a modal box over the screen.
func (m Model) renderOverlay(content string) string {
	box := ModalStyle.Render(content)
	if m.dash.Errors.IsOpen() && m.dates == nil {
		box = ErrorModalStyle.Render(content)
	}
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

// renderModal returns the content of the topmost open presenter, or "".
func (m Model) renderModal() string {
	d := m.dash
	switch {
	case d.Errors.IsOpen():
		return ErrorTitleStyle.Render(dashboard.ErrorTitle) + "\n" +
			d.Errors.Message() + "\n\n" +
			MutedStyle.Render("esc close")

	case d.Exports.IsOpen():
		lines := []string{ModalTitleStyle.Render("Export links")}
		for _, u := range d.Exports.URLs() {
			lines = append(lines, u)
		}
		lines = append(lines, "", MutedStyle.Render("c copy all | esc close"))
		return strings.Join(lines, "\n")

	case d.Formats.IsOpen():
		lines := []string{ModalTitleStyle.Render("Image formats")}
		for i, l := range d.Formats.Links() {
			line := fmt.Sprintf("%-4s %s", l.Format, l.URL)
			if i == m.formatIndex {
				line = EntryCursorStyle.Render(GlyphCursor + " " + line)
			} else {
				line = EntryStyle.Render("  " + line)
			}
			lines = append(lines, line)
		}
		lines = append(lines, "", MutedStyle.Render("↑↓ choose | c copy | esc close"))
		return strings.Join(lines, "\n")

	case m.defsOpen:
		return m.renderGraphDefs()
	}
	return ""
}

func (m Model) renderGraphDefs() string {
	defs := m.dash.GraphDefs
	title := ModalTitleStyle.Render("Graph definitions")
	if !defs.Loaded() {
		return title + "\n" + m.spinner.View() + " loading..."
	}

	var names []string
	for i, name := range defs.Names() {
		switch {
		case i == m.defsCursor:
			names = append(names, EntryCursorStyle.Render(GlyphCursor+" "+name))
		case name == defs.Current():
			names = append(names, EntrySelectedStyle.Render("  "+name))
		default:
			names = append(names, EntryStyle.Render("  "+name))
		}
	}
	if len(names) == 0 {
		names = append(names, MutedStyle.Render("(none)"))
	}

	list := lipgloss.NewStyle().Width(24).Render(strings.Join(names, "\n"))
	content := MutedStyle.Render("enter to show")
	if c := defs.Content(); c != "" {
		content = valueOrMuted(c)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", content)

	return title + "\n" + body + "\n\n" + MutedStyle.Render("↑↓ choose | enter show | c copy | esc close")
}

// valueOrMuted renders s plainly, or a muted placeholder when empty.
func valueOrMuted(s string) string {
	if strings.TrimSpace(s) == "" {
		return MutedStyle.Render("(empty)")
	}
	return LabelStyle.Render(s)
}

// truncate shortens s to limit runes, adding an ellipsis when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 1 || len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
