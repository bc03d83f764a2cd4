package dashboard

import (
	"time"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/logger"
)

// Deps are the external collaborators of a Dashboard.
type Deps struct {
	Source    Source
	Runner    Runner
	NewWidget WidgetFactory
	// Scroll carries the bottom offset of the visible grid area. A private
	// topic is created when nil.
	Scroll  *events.Topic[int]
	Formats []string
	Clock   func() time.Time
	Logger  logger.Logger
}

// Dashboard is the assembled set of components.
type Dashboard struct {
	Hosts     *HostList
	Grid      *Grid
	Toolbar   *Toolbar
	Options   *Options
	Ruler     *Ruler
	Errors    *ErrorPresenter
	Formats   *FormatPresenter
	Exports   *ExportPresenter
	GraphDefs *GraphDefs
	Scroll    *events.Topic[int]

	subs events.Group
}

// New builds every component and wires their topics. The host fetch starts
// immediately.
func New(deps Deps) *Dashboard {
	log := logger.OrNoop(deps.Logger)
	if deps.Scroll == nil {
		deps.Scroll = events.NewTopic[int]("scroll")
	}

	d := &Dashboard{
		Toolbar: NewToolbar(log),
		Options: NewOptions(),
		Ruler:   &Ruler{},
		Errors:  &ErrorPresenter{},
		Formats: NewFormatPresenter(deps.Formats),
		Exports: &ExportPresenter{},
		Scroll:  deps.Scroll,
	}
	d.Grid = NewGrid(GridDeps{
		Signer:    deps.Source,
		Runner:    deps.Runner,
		NewWidget: deps.NewWidget,
		Scroll:    deps.Scroll,
		Formats:   d.Formats,
		Exports:   d.Exports,
		Clock:     deps.Clock,
		Logger:    log,
	})
	d.GraphDefs = NewGraphDefs(deps.Source, deps.Runner, log)

	o, t, g := d.Options, d.Toolbar, d.Grid
	d.subs.Add(o.GridView.Subscribe(g.SetView))
	d.subs.Add(o.SetRuler.Subscribe(d.Ruler.Set))
	d.subs.Add(o.SetLazy.Subscribe(g.SetLazy))

	d.subs.Add(t.Error.Subscribe(d.Errors.Show))
	d.subs.Add(t.SetDates.Subscribe(func(r DateRange) { g.SetDates(r.Start, r.End) }))
	d.subs.Add(t.ChangeTimespan.Subscribe(g.SetTimespan))
	d.subs.Add(t.SelectAll.Subscribe(func(events.Signal) { g.SelectAll() }))
	d.subs.Add(t.SelectNone.Subscribe(func(events.Signal) { g.SelectNone() }))
	d.subs.Add(t.MoveAllForward.Subscribe(func(events.Signal) { g.MoveAllForward() }))
	d.subs.Add(t.MoveAllBackward.Subscribe(func(events.Signal) { g.MoveAllBackward() }))
	d.subs.Add(t.ZoomAllIn.Subscribe(func(events.Signal) { g.ZoomAllIn() }))
	d.subs.Add(t.ZoomAllOut.Subscribe(func(events.Signal) { g.ZoomAllOut() }))

	d.Hosts = NewHostList(deps.Source, deps.Runner, log)
	d.subs.Add(d.Hosts.ShowGraphs.Subscribe(g.DisplayGraphs))

	return d
}

// Close detaches every wiring made by New.
func (d *Dashboard) Close() {
	d.subs.Unsubscribe()
	d.Grid.Close()
}
