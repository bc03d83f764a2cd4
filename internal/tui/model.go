package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/cw/internal/config"
	"github.com/rileyhilliard/cw/internal/dashboard"
	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/graph"
	"github.com/rileyhilliard/cw/internal/logger"
)

// Layout constants
const (
	sidebarWidth  = 30
	headerHeight  = 2 // title + toolbar
	footerHeight  = 1
	gridCardWidth = 38
)

// flashDuration is how long status messages such as "copied" stay visible.
var flashDuration = 3 * time.Second

// Options configure a new Model.
type Options struct {
	Source dashboard.Source
	// Resolve turns server-relative graph URLs into absolute ones.
	Resolve func(string) string
	Server  string
	Formats []string
	Lazy    bool
	View    string
	Ruler   bool
	Logger  logger.Logger
	// Clipboard receives copied text. Defaults to an OSC52 copy.
	Clipboard func(string)
	Clock     func() time.Time
}

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// flashExpiredMsg clears a flash message.
type flashExpiredMsg struct {
	id int
}

// Model is the Bubble Tea model for the graph dashboard.
type Model struct {
	dash   *dashboard.Dashboard
	runner *cmdRunner
	log    logger.Logger
	server string
	copy   func(string)
	clock  func() time.Time

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	hostFilter   textinput.Model
	pluginFilter textinput.Model
	filtering    bool

	viewport      viewport.Model
	viewportReady bool
	width         int
	height        int

	focus        Pane
	hostCursor   int
	pluginCursor int
	graphCursor  int

	// Grid bookkeeping filled in by refreshGrid.
	generation   int
	cardTops     []int
	cardHeights  []int
	perRow       int
	lastOffset   int
	lastBottom   int
	followCursor bool

	dates       *dateForm
	showHelp    bool
	defsOpen    bool
	defsCursor  int
	formatIndex int
	spinning    bool
	flash       string
	flashID     int
	quitting    bool
}

// New creates the model and its dashboard. The first host fetch is queued
// and starts with Init.
func New(opts Options) Model {
	log := logger.OrNoop(opts.Logger)
	runner := &cmdRunner{}
	scroll := events.NewTopic[int]("scroll")

	dash := dashboard.New(dashboard.Deps{
		Source:    opts.Source,
		Runner:    runner,
		NewWidget: graph.Factory(opts.Resolve),
		Scroll:    scroll,
		Formats:   opts.Formats,
		Clock:     opts.Clock,
		Logger:    log,
	})

	view := opts.View
	if view == "" {
		view = dashboard.ViewList
	}
	dash.Options.ChangeGridView(view)
	if opts.Lazy {
		dash.Options.ToggleLazy(true)
	}
	if opts.Ruler {
		dash.Options.ToggleRuler(true)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = termenv.Copy
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(SpinnerStyle))

	h := help.New()
	h.ShortSeparator = " | "

	return Model{
		dash:         dash,
		runner:       runner,
		log:          log,
		server:       opts.Server,
		copy:         clip,
		clock:        clock,
		keys:         newKeyMap(),
		help:         h,
		spinner:      sp,
		hostFilter:   newFilterInput("filter hosts"),
		pluginFilter: newFilterInput("filter plugins"),
		focus:        PaneHosts,
		perRow:       1,
		lastOffset:   -1,
	}
}

func newFilterInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Dashboard exposes the underlying components.
func (m Model) Dashboard() *dashboard.Dashboard {
	return m.dash
}

// Focus returns the pane receiving navigation keys.
func (m Model) Focus() Pane {
	return m.focus
}

// Init starts the queued fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runner.drain(), m.startSpinner())
}

// Update handles a message, then hands queued fetches to Bubble Tea and
// re-lays out the grid.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	cmds := []tea.Cmd{cmd, m.runner.drain(), m.startSpinner()}
	m.refreshGrid()
	return m, tea.Batch(cmds...)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if m.viewportReady && !m.overlayOpen() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case appliedMsg:
		m.runner.finish(msg)
		m.clampCursors()

	case spinner.TickMsg:
		if !m.runner.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg)

	case flashExpiredMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}

	default:
		// huh drives field and group changes through its own messages.
		if m.dates != nil {
			return m.updateDateForm(msg)
		}
	}

	return m, nil
}

// View renders the dashboard or whichever overlay is open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.viewportReady {
		return "\n  Connecting to " + m.server + "..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.dates != nil {
		return m.renderOverlay(m.dates.view())
	}
	if modal := m.renderModal(); modal != "" {
		return m.renderOverlay(modal)
	}
	return m.renderDashboard()
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.runner.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	vpWidth := width - sidebarWidth
	if vpWidth < 10 {
		vpWidth = 10
	}
	vpHeight := height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.viewport.YPosition = headerHeight
		m.viewportReady = true
		return
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
}

// applyConfig picks up dashboard options changed in the config file.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("config reload: %v", msg.Err)
		return m.setFlash("config reload failed")
	}

	d := msg.Config.Dashboard
	opts := m.dash.Options
	if d.Lazy != opts.Lazy() {
		opts.ToggleLazy(d.Lazy)
	}
	if d.Ruler != opts.Ruler() {
		opts.ToggleRuler(d.Ruler)
	}
	if d.View != "" && d.View != opts.View() {
		opts.ChangeGridView(d.View)
	}
	m.log.Debug("applied reloaded config: %+v", d)
	return m.setFlash("config reloaded")
}

func (m *Model) setFlash(text string) tea.Cmd {
	m.flashID++
	m.flash = text
	id := m.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// overlayOpen reports whether something covers the dashboard.
func (m Model) overlayOpen() bool {
	d := m.dash
	return m.showHelp || m.dates != nil || m.defsOpen ||
		d.Errors.IsOpen() || d.Formats.IsOpen() || d.Exports.IsOpen()
}

func (m *Model) clampCursors() {
	m.hostCursor = clamp(m.hostCursor, len(m.dash.Hosts.Visible()))
	if p := m.dash.Hosts.Plugins(); p != nil {
		m.pluginCursor = clamp(m.pluginCursor, len(p.Visible()))
	} else {
		m.pluginCursor = 0
	}
	m.graphCursor = clamp(m.graphCursor, len(m.dash.Grid.Widgets()))
	if names := m.dash.GraphDefs.Names(); len(names) > 0 {
		m.defsCursor = clamp(m.defsCursor, len(names))
	}
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// cursorWidget returns the widget under the graph cursor, or nil.
func (m Model) cursorWidget() dashboard.Widget {
	widgets := m.dash.Grid.Widgets()
	if m.graphCursor < 0 || m.graphCursor >= len(widgets) {
		return nil
	}
	return widgets[m.graphCursor]
}
