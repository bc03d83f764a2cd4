package dashboard

import (
	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/logger"
)

// InvalidDatesMessage is shown when a submitted date cannot be parsed.
const InvalidDatesMessage = "One of the dates is invalid"

// ToolbarItem names a toolbar section.
type ToolbarItem string

const (
	ItemHome     ToolbarItem = "home"
	ItemPanZoom  ToolbarItem = "pan-zoom"
	ItemTimespan ToolbarItem = "timespan"
)

// ToolbarItems lists the sections in display order.
var ToolbarItems = []ToolbarItem{ItemHome, ItemPanZoom, ItemTimespan}

// Command is a bulk grid command issued from the toolbar.
type Command int

const (
	CmdSelectAll Command = iota
	CmdSelectNone
	CmdMoveForward
	CmdMoveBackward
	CmdZoomIn
	CmdZoomOut
)

// Toolbar turns user gestures into published commands. It holds no grid
// state of its own.
type Toolbar struct {
	SetDates        *events.Topic[DateRange]
	ChangeTimespan  *events.Topic[string]
	SelectAll       *events.Topic[events.Signal]
	SelectNone      *events.Topic[events.Signal]
	MoveAllForward  *events.Topic[events.Signal]
	MoveAllBackward *events.Topic[events.Signal]
	ZoomAllIn       *events.Topic[events.Signal]
	ZoomAllOut      *events.Topic[events.Signal]
	Error           *events.Topic[string]

	log  logger.Logger
	item ToolbarItem
}

// NewToolbar creates a toolbar showing the home section.
func NewToolbar(log logger.Logger) *Toolbar {
	return &Toolbar{
		SetDates:        events.NewTopic[DateRange]("set-dates"),
		ChangeTimespan:  events.NewTopic[string]("change-timespan"),
		SelectAll:       events.NewTopic[events.Signal]("select-all"),
		SelectNone:      events.NewTopic[events.Signal]("select-none"),
		MoveAllForward:  events.NewTopic[events.Signal]("move-all-forward"),
		MoveAllBackward: events.NewTopic[events.Signal]("move-all-backward"),
		ZoomAllIn:       events.NewTopic[events.Signal]("zoom-all-in"),
		ZoomAllOut:      events.NewTopic[events.Signal]("zoom-all-out"),
		Error:           events.NewTopic[string]("error"),
		log:             logger.OrNoop(log),
		item:            ItemHome,
	}
}

// SubmitDate parses the from and to fields. Both must parse or an error is
// published instead of the range.
func (t *Toolbar) SubmitDate(from, to string) {
	start, okFrom := ParseDate(from)
	end, okTo := ParseDate(to)
	if !okFrom || !okTo {
		t.log.Debug("rejected date range %q - %q", from, to)
		t.Error.Publish(InvalidDatesMessage)
		return
	}
	t.SetDates.Publish(DateRange{Start: start, End: end})
}

// SelectTimespan publishes a timespan preset.
func (t *Toolbar) SelectTimespan(unit string) {
	t.ChangeTimespan.Publish(unit)
}

// Press publishes the topic matching cmd.
func (t *Toolbar) Press(cmd Command) {
	switch cmd {
	case CmdSelectAll:
		t.SelectAll.Publish(events.Signal{})
	case CmdSelectNone:
		t.SelectNone.Publish(events.Signal{})
	case CmdMoveForward:
		t.MoveAllForward.Publish(events.Signal{})
	case CmdMoveBackward:
		t.MoveAllBackward.Publish(events.Signal{})
	case CmdZoomIn:
		t.ZoomAllIn.Publish(events.Signal{})
	case CmdZoomOut:
		t.ZoomAllOut.Publish(events.Signal{})
	default:
		t.log.Debug("unknown toolbar command %d", cmd)
	}
}

// ShowItem switches the visible toolbar section. Unknown items are ignored.
func (t *Toolbar) ShowItem(item ToolbarItem) {
	for _, known := range ToolbarItems {
		if known == item {
			t.item = item
			return
		}
	}
}

// NextItem cycles to the following section.
func (t *Toolbar) NextItem() {
	for i, known := range ToolbarItems {
		if known == t.item {
			t.item = ToolbarItems[(i+1)%len(ToolbarItems)]
			return
		}
	}
}

func (t *Toolbar) Item() ToolbarItem {
	return t.item
}
