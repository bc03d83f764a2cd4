package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/cw/internal/events"
)

// inline runs work and its callback immediately.
var inline = RunnerFunc(func(work func() func()) { work()() })

// queueRunner holds callbacks until flush, to model late responses.
type queueRunner struct {
	pending []func()
}

func (q *queueRunner) Go(work func() func()) {
	q.pending = append(q.pending, work())
}

func (q *queueRunner) flush() {
	pending := q.pending
	q.pending = nil
	for _, apply := range pending {
		apply()
	}
}

type fakeSource struct {
	hosts    []string
	hostsErr error
	plugins  map[string][]string
	graphs   map[string][]string
	signErr  error
	signed   [][]string
	defs     map[string][]string
	defsErr  error
}

func (f *fakeSource) Hosts(context.Context) ([]string, error) {
	return f.hosts, f.hostsErr
}

func (f *fakeSource) Plugins(_ context.Context, host string) ([]string, error) {
	p, ok := f.plugins[host]
	if !ok {
		return nil, fmt.Errorf("no host %s", host)
	}
	return p, nil
}

func (f *fakeSource) Graphs(_ context.Context, plugin string) ([]string, error) {
	g, ok := f.graphs[plugin]
	if !ok {
		return nil, fmt.Errorf("no plugin %s", plugin)
	}
	return g, nil
}

func (f *fakeSource) Sign(_ context.Context, urls []string) ([]string, error) {
	f.signed = append(f.signed, urls)
	if f.signErr != nil {
		return nil, f.signErr
	}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		out = append(out, "http://cw.test"+u+"?sig=1")
	}
	return out, nil
}

func (f *fakeSource) GraphDefs(context.Context) (map[string][]string, error) {
	return f.defs, f.defsErr
}

// fakeWidget records every call the grid makes.
type fakeWidget struct {
	opts     WidgetOptions
	selected bool
	lazy     bool
	ev       WidgetEvents

	setSelected []bool
	forward     int
	backward    int
	zoomIn      int
	zoomOut     int
	dates       []DateRange
	checks      []int
}

func newFakeWidget(opts WidgetOptions) *fakeWidget {
	return &fakeWidget{opts: opts, lazy: opts.Lazy, ev: NewWidgetEvents()}
}

func (w *fakeWidget) URL() string { return w.opts.URL }
func (w *fakeWidget) SetDates(start, end time.Time) {
	w.dates = append(w.dates, DateRange{Start: start, End: end})
}
func (w *fakeWidget) MoveForward()  { w.forward++ }
func (w *fakeWidget) MoveBackward() { w.backward++ }
func (w *fakeWidget) ZoomIn()       { w.zoomIn++ }
func (w *fakeWidget) ZoomOut()      { w.zoomOut++ }
func (w *fakeWidget) SetSelected(s bool) {
	w.selected = s
	w.setSelected = append(w.setSelected, s)
}
func (w *fakeWidget) Selected() bool       { return w.selected }
func (w *fakeWidget) Lazy() bool           { return w.lazy }
func (w *fakeWidget) CheckLazy(bottom int) { w.checks = append(w.checks, bottom) }
func (w *fakeWidget) ImgSrc() string       { return w.opts.URL + "?start=1&end=2" }
func (w *fakeWidget) Events() WidgetEvents { return w.ev }

// widgetRecorder is a WidgetFactory that keeps what it built.
type widgetRecorder struct {
	built []*fakeWidget
}

func (r *widgetRecorder) factory(opts WidgetOptions) Widget {
	w := newFakeWidget(opts)
	r.built = append(r.built, w)
	return w
}

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type gridFixture struct {
	grid    *Grid
	src     *fakeSource
	widgets *widgetRecorder
	scroll  *events.Topic[int]
	formats *FormatPresenter
	exports *ExportPresenter
}

func newGridFixture() *gridFixture {
	f := &gridFixture{
		src:     &fakeSource{},
		widgets: &widgetRecorder{},
		scroll:  events.NewTopic[int]("scroll"),
		formats: NewFormatPresenter(nil),
		exports: &ExportPresenter{},
	}
	f.grid = NewGrid(GridDeps{
		Signer:    f.src,
		Runner:    inline,
		NewWidget: f.widgets.factory,
		Scroll:    f.scroll,
		Formats:   f.formats,
		Exports:   f.exports,
		Clock:     fixedClock,
	})
	return f
}

func (f *gridFixture) widget(i int) *fakeWidget {
	return f.widgets.built[len(f.widgets.built)-len(f.grid.Widgets())+i]
}
