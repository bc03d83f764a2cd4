package graph

import (
	"testing"
	"time"

	"github.com/rileyhilliard/cw/internal/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	t1 = t0.Add(4 * time.Hour)
)

func newView(lazy bool) *View {
	return New(dashboard.WidgetOptions{
		URL:   "/hosts/web-1/load/load.png",
		Start: t0,
		End:   t1,
		Lazy:  lazy,
	}, nil)
}

func TestView_Names(t *testing.T) {
	v := newView(false)
	assert.Equal(t, "load", v.Name())
	assert.Equal(t, "load/load", v.Title())

	bare := New(dashboard.WidgetOptions{URL: "cpu.png?x=1"}, nil)
	assert.Equal(t, "cpu", bare.Name())
	assert.Equal(t, "cpu", bare.Title())
}

func TestView_Pan(t *testing.T) {
	v := newView(false)

	v.MoveForward()
	assert.Equal(t, t0.Add(2*time.Hour), v.Start())
	assert.Equal(t, t1.Add(2*time.Hour), v.End())

	v.MoveBackward()
	v.MoveBackward()
	assert.Equal(t, t0.Add(-2*time.Hour), v.Start())
	assert.Equal(t, 4*time.Hour, v.Span())
}

func TestView_Zoom(t *testing.T) {
	v := newView(false)

	v.ZoomIn()
	assert.Equal(t, t0.Add(time.Hour), v.Start())
	assert.Equal(t, t1.Add(-time.Hour), v.End())

	v.ZoomOut()
	assert.Equal(t, t0, v.Start())
	assert.Equal(t, t1, v.End())
}

func TestView_ZoomInStopsAtMinSpan(t *testing.T) {
	v := newView(false)
	for i := 0; i < 20; i++ {
		v.ZoomIn()
	}
	assert.Equal(t, MinSpan, v.Span())
}

func TestView_ZoomInKeepsNarrowWindow(t *testing.T) {
	v := newView(false)
	v.SetDates(t0, t0.Add(10*time.Second))

	v.ZoomIn()

	assert.Equal(t, t0, v.Start())
	assert.Equal(t, 10*time.Second, v.Span())
}

func TestView_SetDatesOrdersBounds(t *testing.T) {
	v := newView(false)
	v.SetDates(t1, t0)
	assert.Equal(t, t0, v.Start())
	assert.Equal(t, t1, v.End())
}

func TestView_ImgSrc(t *testing.T) {
	v := newView(false)
	assert.Equal(t, "/hosts/web-1/load/load.png?start=1710460800&end=1710475200", v.ImgSrc())

	resolved := New(dashboard.WidgetOptions{URL: "/g.png?host=a", Start: t0, End: t1},
		func(s string) string { return "http://cw.test" + s })
	assert.Equal(t, "http://cw.test/g.png?host=a&start=1710460800&end=1710475200", resolved.ImgSrc())
}

func TestView_LazyLoading(t *testing.T) {
	tests := []struct {
		name       string
		lazy       bool
		top        int
		bottom     int
		wantLoaded bool
	}{
		{name: "eager view is loaded", lazy: false, top: 100, bottom: 10, wantLoaded: true},
		{name: "lazy view below the fold", lazy: true, top: 100, bottom: 10, wantLoaded: false},
		{name: "lazy view scrolled into view", lazy: true, top: 5, bottom: 10, wantLoaded: true},
		{name: "top equal to bottom stays hidden", lazy: true, top: 10, bottom: 10, wantLoaded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(tt.lazy)
			v.SetTop(tt.top)
			v.CheckLazy(tt.bottom)
			assert.Equal(t, tt.wantLoaded, v.Loaded())
			assert.Equal(t, !tt.wantLoaded, v.Lazy())
		})
	}
}

func TestView_RequestsPublishSelf(t *testing.T) {
	v := newView(false)
	var got []dashboard.Widget
	record := func(w dashboard.Widget) { got = append(got, w) }
	v.Events().Select.Subscribe(record)
	v.Events().Export.Subscribe(record)
	v.Events().ExportLink.Subscribe(record)

	v.RequestSelect()
	v.RequestExport()
	v.RequestExportLink()

	require.Len(t, got, 3)
	for _, w := range got {
		assert.Same(t, v, w)
	}
}

func TestFactory_WithGrid(t *testing.T) {
	grid := dashboard.NewGrid(dashboard.GridDeps{
		NewWidget: Factory(nil),
		Clock:     func() time.Time { return t1 },
	})
	grid.DisplayGraphs([]string{"/a.png", "/b.png"})

	a := grid.Widgets()[0].(*View)
	a.RequestSelect()
	assert.True(t, a.Selected())

	grid.ZoomAllIn()
	assert.Equal(t, 12*time.Hour, a.Span())
	assert.Equal(t, 24*time.Hour, grid.Widgets()[1].(*View).Span())
}
