package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/cw/internal/dashboard"
)

// Pane is the part of the screen that receives navigation keys.
type Pane int

const (
	PaneHosts Pane = iota
	PanePlugins
	PaneGraphs
)

// String returns a human-readable label for the pane.
func (p Pane) String() string {
	switch p {
	case PaneHosts:
		return "hosts"
	case PanePlugins:
		return "plugins"
	case PaneGraphs:
		return "graphs"
	default:
		return "hosts"
	}
}

// Next cycles to the next pane.
func (p Pane) Next() Pane {
	return Pane((int(p) + 1) % 3)
}

// Prev cycles to the previous pane.
func (p Pane) Prev() Pane {
	return Pane((int(p) + 2) % 3)
}

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyToggleHelp  = "?"
	KeyClose       = "esc"
	KeyFocusNext   = "tab"
	KeyFocusPrev   = "shift+tab"
	KeyFilter      = "/"
	KeyOpen        = "enter"
	KeyRefresh     = "r"
	KeyUp          = "up"
	KeyUpK         = "k"
	KeyDown        = "down"
	KeyDownJ       = "j"
	KeyLeft        = "left"
	KeyLeftH       = "h"
	KeyRight       = "right"
	KeyRightL      = "l"
	KeyPageUp      = "pgup"
	KeyPageDown    = "pgdown"
	KeyToggleGraph = " "
	KeySelectAll   = "a"
	KeySelectNone  = "n"
	KeyPanBack     = "<"
	KeyPanForward  = ">"
	KeyZoomIn      = "+"
	KeyZoomInAlt   = "="
	KeyZoomOut     = "-"
	KeyDates       = "d"
	KeyFormats     = "o"
	KeyExport      = "x"
	KeyGridView    = "g"
	KeyLazy        = "z"
	KeyRuler       = "R"
	KeyRulerLeft   = "{"
	KeyRulerRight  = "}"
	KeyGraphDefs   = "D"
	KeyToolbar     = "t"
	KeyCopy        = "c"
)

// timespanKeys maps the number row to timespan presets.
var timespanKeys = map[string]string{
	"1": dashboard.UnitHour,
	"2": dashboard.UnitDay,
	"3": dashboard.UnitWeek,
	"4": dashboard.UnitMonth,
	"5": dashboard.UnitYear,
}

// rulerStep is how far { and } move the ruler.
const rulerStep = 2

// keyMap feeds the help views. Dispatch itself switches on the constants above.
type keyMap struct {
	Focus     key.Binding
	Filter    key.Binding
	Open      key.Binding
	Navigate  key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	None      key.Binding
	Pan       key.Binding
	Zoom      key.Binding
	Timespan  key.Binding
	Dates     key.Binding
	Formats   key.Binding
	Export    key.Binding
	GridView  key.Binding
	Lazy      key.Binding
	Ruler     key.Binding
	MoveRuler key.Binding
	GraphDefs key.Binding
	Toolbar   key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:     key.NewBinding(key.WithKeys(KeyFocusNext, KeyFocusPrev), key.WithHelp("tab", "focus")),
		Filter:    key.NewBinding(key.WithKeys(KeyFilter), key.WithHelp("/", "filter")),
		Open:      key.NewBinding(key.WithKeys(KeyOpen), key.WithHelp("enter", "open")),
		Navigate:  key.NewBinding(key.WithKeys(KeyUp, KeyDown, KeyLeft, KeyRight), key.WithHelp("↑↓←→", "move")),
		Toggle:    key.NewBinding(key.WithKeys(KeyToggleGraph), key.WithHelp("space", "select graph")),
		SelectAll: key.NewBinding(key.WithKeys(KeySelectAll), key.WithHelp("a", "select all")),
		None:      key.NewBinding(key.WithKeys(KeySelectNone), key.WithHelp("n", "select none")),
		Pan:       key.NewBinding(key.WithKeys(KeyPanBack, KeyPanForward), key.WithHelp("< >", "pan")),
		Zoom:      key.NewBinding(key.WithKeys(KeyZoomIn, KeyZoomInAlt, KeyZoomOut), key.WithHelp("+ -", "zoom")),
		Timespan:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "hour…year")),
		Dates:     key.NewBinding(key.WithKeys(KeyDates), key.WithHelp("d", "date range")),
		Formats:   key.NewBinding(key.WithKeys(KeyFormats), key.WithHelp("o", "formats")),
		Export:    key.NewBinding(key.WithKeys(KeyExport), key.WithHelp("x", "export links")),
		GridView:  key.NewBinding(key.WithKeys(KeyGridView), key.WithHelp("g", "grid/list")),
		Lazy:      key.NewBinding(key.WithKeys(KeyLazy), key.WithHelp("z", "lazy loading")),
		Ruler:     key.NewBinding(key.WithKeys(KeyRuler), key.WithHelp("R", "ruler")),
		MoveRuler: key.NewBinding(key.WithKeys(KeyRulerLeft, KeyRulerRight), key.WithHelp("{ }", "move ruler")),
		GraphDefs: key.NewBinding(key.WithKeys(KeyGraphDefs), key.WithHelp("D", "graph defs")),
		Toolbar:   key.NewBinding(key.WithKeys(KeyToolbar), key.WithHelp("t", "toolbar")),
		Refresh:   key.NewBinding(key.WithKeys(KeyRefresh), key.WithHelp("r", "reload hosts")),
		Copy:      key.NewBinding(key.WithKeys(KeyCopy), key.WithHelp("c", "copy")),
		Help:      key.NewBinding(key.WithKeys(KeyToggleHelp), key.WithHelp("?", "help")),
		Close:     key.NewBinding(key.WithKeys(KeyClose), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys(KeyQuit, KeyQuitAlt), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Open, k.Toggle, k.Pan, k.Zoom, k.Timespan, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Navigate, k.Filter, k.Open, k.Refresh, k.Close},
		{k.Toggle, k.SelectAll, k.None, k.Pan, k.Zoom, k.Timespan, k.Dates},
		{k.Formats, k.Export, k.Copy, k.GridView, k.Lazy, k.Ruler, k.MoveRuler},
		{k.GraphDefs, k.Toolbar, k.Help, k.Quit},
	}
}

// handleKey routes a key press. Overlays get the key first, then an active
// filter input, then the dashboard shortcuts.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := msg.String()

	if k == KeyQuitAlt {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.dates != nil:
		return m.handleDateFormKey(msg)
	case m.filtering:
		return m.handleFilterKey(msg)
	case m.showHelp:
		if k == KeyToggleHelp || k == KeyClose || k == KeyQuit {
			m.showHelp = false
		}
		return m, nil
	case m.dash.Errors.IsOpen():
		if k == KeyClose || k == KeyOpen || k == KeyQuit {
			m.dash.Errors.Close()
		}
		return m, nil
	case m.dash.Exports.IsOpen():
		return m.handleExportKey(k)
	case m.dash.Formats.IsOpen():
		return m.handleFormatKey(k)
	case m.defsOpen:
		return m.handleDefsKey(k)
	}

	if span, ok := timespanKeys[k]; ok {
		m.dash.Toolbar.SelectTimespan(span)
		return m, nil
	}

	tb := m.dash.Toolbar
	opts := m.dash.Options

	switch k {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit

	case KeyToggleHelp:
		m.showHelp = true

	case KeyFocusNext:
		m.focus = m.focus.Next()

	case KeyFocusPrev:
		m.focus = m.focus.Prev()

	case KeyFilter:
		return m.startFilter()

	case KeyClose:
		m.clearFilter()

	case KeyRefresh:
		m.dash.Hosts.Refresh()

	case KeyUp, KeyUpK:
		m.moveCursor(-m.verticalStep())
	case KeyDown, KeyDownJ:
		m.moveCursor(m.verticalStep())
	case KeyLeft, KeyLeftH:
		m.moveCursor(-1)
	case KeyRight, KeyRightL:
		m.moveCursor(1)

	case KeyPageUp:
		m.viewport.HalfViewUp()
	case KeyPageDown:
		m.viewport.HalfViewDown()

	case KeyOpen:
		m.open()

	case KeyToggleGraph:
		if w := m.cursorWidget(); w != nil {
			requestSelect(m.dash.Grid, w)
		}

	case KeySelectAll:
		tb.Press(dashboard.CmdSelectAll)
	case KeySelectNone:
		tb.Press(dashboard.CmdSelectNone)
	case KeyPanBack:
		tb.Press(dashboard.CmdMoveBackward)
	case KeyPanForward:
		tb.Press(dashboard.CmdMoveForward)
	case KeyZoomIn, KeyZoomInAlt:
		tb.Press(dashboard.CmdZoomIn)
	case KeyZoomOut:
		tb.Press(dashboard.CmdZoomOut)

	case KeyDates:
		return m, m.openDateForm()

	case KeyFormats:
		if w := m.cursorWidget(); w != nil {
			m.formatIndex = 0
			requestExport(m.dash.Grid, w)
		}

	case KeyExport:
		if w := m.cursorWidget(); w != nil {
			requestExportLink(m.dash.Grid, w)
		}

	case KeyGridView:
		if opts.View() == dashboard.ViewGrid {
			opts.ChangeGridView(dashboard.ViewList)
		} else {
			opts.ChangeGridView(dashboard.ViewGrid)
		}

	case KeyLazy:
		opts.ToggleLazy(!opts.Lazy())

	case KeyRuler:
		opts.ToggleRuler(!opts.Ruler())

	case KeyRulerLeft:
		m.dash.Ruler.Move(-rulerStep)
	case KeyRulerRight:
		m.dash.Ruler.Move(rulerStep)

	case KeyGraphDefs:
		m.dash.GraphDefs.Load()
		m.defsOpen = true

	case KeyToolbar:
		tb.NextItem()

	default:
		return m, nil
	}

	return m, nil
}

func (m *Model) verticalStep() int {
	if m.focus == PaneGraphs && m.perRow > 1 {
		return m.perRow
	}
	return 1
}

// moveCursor moves the cursor of the focused pane by delta.
func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case PaneHosts:
		m.hostCursor = clamp(m.hostCursor+delta, len(m.dash.Hosts.Visible()))
	case PanePlugins:
		if p := m.dash.Hosts.Plugins(); p != nil {
			m.pluginCursor = clamp(m.pluginCursor+delta, len(p.Visible()))
		}
	case PaneGraphs:
		m.graphCursor = clamp(m.graphCursor+delta, len(m.dash.Grid.Widgets()))
		m.followCursor = true
	}
}

// open selects the host or plugin under the cursor and moves focus on.
func (m *Model) open() {
	switch m.focus {
	case PaneHosts:
		visible := m.dash.Hosts.Visible()
		if m.hostCursor < len(visible) {
			m.dash.Hosts.Select(visible[m.hostCursor].URL)
			m.pluginCursor = 0
			m.pluginFilter.SetValue("")
			m.focus = PanePlugins
		}
	case PanePlugins:
		p := m.dash.Hosts.Plugins()
		if p == nil {
			return
		}
		visible := p.Visible()
		if m.pluginCursor < len(visible) {
			p.Select(visible[m.pluginCursor].URL)
			m.focus = PaneGraphs
		}
	case PaneGraphs:
		if w := m.cursorWidget(); w != nil {
			requestSelect(m.dash.Grid, w)
		}
	}
}

func (m Model) startFilter() (Model, tea.Cmd) {
	switch m.focus {
	case PaneHosts:
		m.filtering = true
		return m, m.hostFilter.Focus()
	case PanePlugins:
		if m.dash.Hosts.Plugins() == nil {
			return m, nil
		}
		m.filtering = true
		return m, m.pluginFilter.Focus()
	}
	return m, nil
}

// clearFilter empties the focused list's filter.
func (m *Model) clearFilter() {
	switch m.focus {
	case PaneHosts:
		m.hostFilter.SetValue("")
		m.dash.Hosts.Filter("")
	case PanePlugins:
		m.pluginFilter.SetValue("")
		if p := m.dash.Hosts.Plugins(); p != nil {
			p.Filter("")
		}
	}
	m.clampCursors()
}

// handleFilterKey feeds the active filter input. Every keystroke refilters.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case KeyClose:
		m.filtering = false
		m.hostFilter.Blur()
		m.pluginFilter.Blur()
		m.clearFilter()
		return m, nil
	case KeyOpen:
		m.filtering = false
		m.hostFilter.Blur()
		m.pluginFilter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == PaneHosts {
		m.hostFilter, cmd = m.hostFilter.Update(msg)
		m.dash.Hosts.Filter(m.hostFilter.Value())
	} else if p := m.dash.Hosts.Plugins(); p != nil {
		m.pluginFilter, cmd = m.pluginFilter.Update(msg)
		p.Filter(m.pluginFilter.Value())
	}
	m.clampCursors()
	return m, cmd
}

func (m Model) handleFormatKey(k string) (Model, tea.Cmd) {
	links := m.dash.Formats.Links()
	switch k {
	case KeyClose, KeyQuit:
		m.dash.Formats.Close()
	case KeyUp, KeyUpK:
		m.formatIndex = clamp(m.formatIndex-1, len(links))
	case KeyDown, KeyDownJ:
		m.formatIndex = clamp(m.formatIndex+1, len(links))
	case KeyOpen, KeyCopy:
		if m.formatIndex < len(links) {
			m.copy(links[m.formatIndex].URL)
			return m, m.setFlash("copied " + links[m.formatIndex].Format + " link")
		}
	}
	return m, nil
}

func (m Model) handleExportKey(k string) (Model, tea.Cmd) {
	switch k {
	case KeyClose, KeyQuit:
		m.dash.Exports.Close()
	case KeyOpen, KeyCopy:
		m.copy(m.dash.Exports.Text())
		m.dash.Exports.Close()
		return m, m.setFlash("copied export links")
	}
	return m, nil
}

func (m Model) handleDefsKey(k string) (Model, tea.Cmd) {
	names := m.dash.GraphDefs.Names()
	switch k {
	case KeyClose, KeyQuit, KeyGraphDefs:
		m.defsOpen = false
	case KeyUp, KeyUpK:
		m.defsCursor = clamp(m.defsCursor-1, len(names))
	case KeyDown, KeyDownJ:
		m.defsCursor = clamp(m.defsCursor+1, len(names))
	case KeyOpen:
		if m.defsCursor < len(names) {
			m.dash.GraphDefs.Choose(names[m.defsCursor])
		}
	case KeyCopy:
		if content := m.dash.GraphDefs.Content(); content != "" {
			m.copy(content)
			return m, m.setFlash("copied " + m.dash.GraphDefs.Current())
		}
	}
	return m, nil
}

// Widgets built by package graph publish their own requests; anything else
// is handed to the grid directly.
type requester interface {
	RequestSelect()
	RequestExport()
	RequestExportLink()
}

func requestSelect(g *dashboard.Grid, w dashboard.Widget) {
	if r, ok := w.(requester); ok {
		r.RequestSelect()
		return
	}
	g.Select(w)
}

func requestExport(g *dashboard.Grid, w dashboard.Widget) {
	if r, ok := w.(requester); ok {
		r.RequestExport()
		return
	}
	g.Output(w)
}

func requestExportLink(g *dashboard.Grid, w dashboard.Widget) {
	if r, ok := w.(requester); ok {
		r.RequestExportLink()
		return
	}
	g.ExportLink(w)
}
