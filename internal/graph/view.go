// Package graph implements the graph widget shown in the dashboard grid.
package graph

import (
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/cw/internal/dashboard"
)

// MinSpan is the narrowest window ZoomIn will produce.
const MinSpan = time.Minute

// View is one collectd graph with its own time window.
type View struct {
	url     string
	resolve func(string) string
	events  dashboard.WidgetEvents

	start    time.Time
	end      time.Time
	selected bool
	lazy     bool
	loaded   bool
	top      int
}

// New creates a view. resolve turns the server-relative graph URL into the
// one the image is fetched from; nil keeps it unchanged.
func New(opts dashboard.WidgetOptions, resolve func(string) string) *View {
	if resolve == nil {
		resolve = func(s string) string { return s }
	}
	return &View{
		url:     opts.URL,
		resolve: resolve,
		events:  dashboard.NewWidgetEvents(),
		start:   opts.Start,
		end:     opts.End,
		lazy:    opts.Lazy,
		loaded:  !opts.Lazy,
	}
}

// Factory returns a dashboard.WidgetFactory building views with resolve.
func Factory(resolve func(string) string) dashboard.WidgetFactory {
	return func(opts dashboard.WidgetOptions) dashboard.Widget {
		return New(opts, resolve)
	}
}

func (v *View) URL() string { return v.url }

// Name is the graph file name without its extension.
func (v *View) Name() string {
	name := v.url
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimRight(name, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".png")
}

// Title is the plugin and graph name, e.g. "load/load".
func (v *View) Title() string {
	parts := strings.Split(strings.Trim(v.url, "/"), "/")
	if len(parts) < 2 {
		return v.Name()
	}
	return parts[len(parts)-2] + "/" + v.Name()
}

func (v *View) Start() time.Time { return v.start }
func (v *View) End() time.Time   { return v.end }

// Span is the width of the window.
func (v *View) Span() time.Duration {
	return v.end.Sub(v.start)
}

func (v *View) SetDates(start, end time.Time) {
	if end.Before(start) {
		start, end = end, start
	}
	v.start, v.end = start, end
}

// MoveForward pans the window by half its width.
func (v *View) MoveForward() {
	half := v.Span() / 2
	v.start = v.start.Add(half)
	v.end = v.end.Add(half)
}

func (v *View) MoveBackward() {
	half := v.Span() / 2
	v.start = v.start.Add(-half)
	v.end = v.end.Add(-half)
}

// ZoomIn halves the window around its centre, down to MinSpan. Windows
// already at or below MinSpan are left alone.
func (v *View) ZoomIn() {
	if v.Span() <= MinSpan {
		return
	}
	span := v.Span() / 2
	if span < MinSpan {
		span = MinSpan
	}
	v.recenter(span)
}

// ZoomOut doubles the window around its centre.
func (v *View) ZoomOut() {
	v.recenter(v.Span() * 2)
}

func (v *View) recenter(span time.Duration) {
	mid := v.start.Add(v.Span() / 2)
	v.start = mid.Add(-span / 2)
	v.end = v.start.Add(span)
}

func (v *View) SetSelected(selected bool) { v.selected = selected }
func (v *View) Selected() bool            { return v.selected }

// Lazy reports whether the image is still waiting to be scrolled into view.
func (v *View) Lazy() bool {
	return v.lazy && !v.loaded
}

// Loaded reports whether the image should be displayed.
func (v *View) Loaded() bool {
	return v.loaded
}

// SetTop records the row the widget starts at inside the grid.
func (v *View) SetTop(row int) {
	v.top = row
}

func (v *View) Top() int { return v.top }

// CheckLazy loads the image once its top row is above bottom.
func (v *View) CheckLazy(bottom int) {
	if v.Lazy() && v.top < bottom {
		v.loaded = true
	}
}

// ImgSrc is the image URL for the current window.
func (v *View) ImgSrc() string {
	src := v.resolve(v.url)
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep +
		"start=" + strconv.FormatInt(v.start.Unix(), 10) +
		"&end=" + strconv.FormatInt(v.end.Unix(), 10)
}

func (v *View) Events() dashboard.WidgetEvents { return v.events }

// RequestSelect asks the grid to toggle this widget.
func (v *View) RequestSelect() {
	v.events.Select.Publish(v)
}

// RequestExport asks for the format links of this widget.
func (v *View) RequestExport() {
	v.events.Export.Publish(v)
}

// RequestExportLink asks for signed links of the selection, or of this
// widget when nothing is selected.
func (v *View) RequestExportLink() {
	v.events.ExportLink.Publish(v)
}

var _ dashboard.Widget = (*View)(nil)
