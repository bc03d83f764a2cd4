package dashboard

import (
	"time"

	"github.com/rileyhilliard/cw/internal/events"
)

// Widget is one graph shown in the grid. The grid only manages its
// lifecycle and selection; time navigation and loading belong to the widget.
type Widget interface {
	URL() string
	SetDates(start, end time.Time)
	MoveForward()
	MoveBackward()
	ZoomIn()
	ZoomOut()
	SetSelected(selected bool)
	Selected() bool
	Lazy() bool
	// CheckLazy loads the image if the widget sits above bottom, the lowest
	// visible row of the grid.
	CheckLazy(bottom int)
	ImgSrc() string
	Events() WidgetEvents
}

// WidgetEvents are the topics a widget publishes itself on.
type WidgetEvents struct {
	Select     *events.Topic[Widget]
	Export     *events.Topic[Widget]
	ExportLink *events.Topic[Widget]
}

// NewWidgetEvents creates a fresh set of widget topics.
func NewWidgetEvents() WidgetEvents {
	return WidgetEvents{
		Select:     events.NewTopic[Widget]("select"),
		Export:     events.NewTopic[Widget]("export"),
		ExportLink: events.NewTopic[Widget]("export-link"),
	}
}

// WidgetOptions configures a new widget.
type WidgetOptions struct {
	URL   string
	Start time.Time
	End   time.Time
	Lazy  bool
}

// WidgetFactory builds a widget for one graph URL.
type WidgetFactory func(opts WidgetOptions) Widget
