package dashboard

import (
	"context"
	"time"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/logger"
)

// View modes.
const (
	ViewList = "list"
	ViewGrid = "grid"
)

// GridDeps are the collaborators of a Grid.
type GridDeps struct {
	Signer    Signer
	Runner    Runner
	NewWidget WidgetFactory
	// Scroll carries the bottom offset of the visible grid area.
	Scroll  *events.Topic[int]
	Formats *FormatPresenter
	Exports *ExportPresenter
	Clock   func() time.Time
	Logger  logger.Logger
}

// Grid owns the displayed graph widgets and the selection set, and fans
// toolbar commands out to them.
type Grid struct {
	deps GridDeps
	log  logger.Logger

	widgets    []Widget
	selection  []Widget
	widgetSubs events.Group
	generation int

	view    string
	lazy    bool
	lazySub *events.Subscription
}

// NewGrid creates an empty grid in list view with lazy loading off.
func NewGrid(deps GridDeps) *Grid {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Scroll == nil {
		deps.Scroll = events.NewTopic[int]("scroll")
	}
	return &Grid{
		deps: deps,
		log:  logger.OrNoop(deps.Logger),
		view: ViewList,
	}
}

// DisplayGraphs replaces every widget with one per URL, covering the last
// day, and clears the selection.
func (g *Grid) DisplayGraphs(urls []string) {
	g.widgetSubs.Unsubscribe()
	g.selection = nil

	now := g.deps.Clock()
	span, _ := LastRange(now, UnitDay)

	g.widgets = make([]Widget, 0, len(urls))
	for _, u := range urls {
		w := g.deps.NewWidget(WidgetOptions{
			URL:   u,
			Start: span.Start,
			End:   span.End,
			Lazy:  g.lazy,
		})
		ev := w.Events()
		g.widgetSubs.Add(ev.Select.Subscribe(g.Select))
		g.widgetSubs.Add(ev.Export.Subscribe(g.Output))
		g.widgetSubs.Add(ev.ExportLink.Subscribe(g.ExportLink))
		g.widgets = append(g.widgets, w)
	}
	g.generation++
	g.log.Debug("displaying %d graphs (generation %d)", len(g.widgets), g.generation)
}

// Widgets returns the displayed widgets in render order.
func (g *Grid) Widgets() []Widget {
	return g.widgets
}

// Selection returns the selected widgets in selection order.
func (g *Grid) Selection() []Widget {
	return g.selection
}

// Generation counts DisplayGraphs calls.
func (g *Grid) Generation() int {
	return g.generation
}

// Select toggles w in the selection set.
func (g *Grid) Select(w Widget) {
	for i, s := range g.selection {
		if s == w {
			g.selection = append(g.selection[:i:i], g.selection[i+1:]...)
			w.SetSelected(false)
			return
		}
	}
	g.selection = append(g.selection, w)
	w.SetSelected(true)
}

// SelectAll selects every widget.
func (g *Grid) SelectAll() {
	g.selection = make([]Widget, 0, len(g.widgets))
	for _, w := range g.widgets {
		w.SetSelected(true)
		g.selection = append(g.selection, w)
	}
}

// SelectNone deselects every widget.
func (g *Grid) SelectNone() {
	for _, w := range g.widgets {
		w.SetSelected(false)
	}
	g.selection = nil
}

func (g *Grid) targets(implicit Widget) []Widget {
	return ResolveTargets(g.selection, implicit, g.widgets)
}

func (g *Grid) MoveAllForward() {
	for _, w := range g.targets(nil) {
		w.MoveForward()
	}
}

func (g *Grid) MoveAllBackward() {
	for _, w := range g.targets(nil) {
		w.MoveBackward()
	}
}

func (g *Grid) ZoomAllIn() {
	for _, w := range g.targets(nil) {
		w.ZoomIn()
	}
}

func (g *Grid) ZoomAllOut() {
	for _, w := range g.targets(nil) {
		w.ZoomOut()
	}
}

// SetDates applies an explicit window to every widget, selected or not.
func (g *Grid) SetDates(start, end time.Time) {
	for _, w := range g.widgets {
		w.SetDates(start, end)
	}
}

// SetTimespan applies the window of one unit ending now to every widget.
func (g *Grid) SetTimespan(unit string) {
	span, err := LastRange(g.deps.Clock(), unit)
	if err != nil {
		g.log.Warn("timespan %q: %v", unit, err)
		return
	}
	g.SetDates(span.Start, span.End)
}

// SetView switches between grid and list layout. Anything but "grid" is
// treated as list.
func (g *Grid) SetView(mode string) {
	if mode == ViewGrid {
		g.view = ViewGrid
		return
	}
	g.view = ViewList
}

func (g *Grid) View() string {
	return g.view
}

// SetLazy turns lazy loading on or off. Widgets created afterwards inherit
// the flag; while on, each scroll offset triggers CheckLazy on lazy widgets.
func (g *Grid) SetLazy(enabled bool) {
	if enabled == g.lazy {
		return
	}
	g.lazy = enabled
	if enabled {
		g.lazySub = g.deps.Scroll.Subscribe(g.checkLazy)
		return
	}
	g.lazySub.Unsubscribe()
	g.lazySub = nil
}

func (g *Grid) Lazy() bool {
	return g.lazy
}

func (g *Grid) checkLazy(bottom int) {
	for _, w := range g.widgets {
		if w.Lazy() {
			w.CheckLazy(bottom)
		}
	}
}

// Output opens the format links of w.
func (g *Grid) Output(w Widget) {
	if g.deps.Formats == nil {
		return
	}
	g.deps.Formats.Launch(w.ImgSrc())
}

// ExportLink signs the resolved targets, w being the implicit one, and
// opens the export presenter with the result. Failures are only logged.
func (g *Grid) ExportLink(w Widget) {
	targets := g.targets(w)
	urls := make([]string, 0, len(targets))
	for _, t := range targets {
		urls = append(urls, t.URL())
	}

	g.deps.Runner.Go(func() func() {
		signed, err := g.deps.Signer.Sign(context.Background(), urls)
		return func() {
			if err != nil {
				g.log.Warn("signing %d graph URLs: %v", len(urls), err)
				return
			}
			if g.deps.Exports != nil {
				g.deps.Exports.Launch(signed)
			}
		}
	})
}

// Close detaches the grid from its widgets and the scroll topic.
func (g *Grid) Close() {
	g.widgetSubs.Unsubscribe()
	g.lazySub.Unsubscribe()
	g.lazySub = nil
}
