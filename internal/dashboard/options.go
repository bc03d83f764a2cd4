package dashboard

import "github.com/rileyhilliard/cw/internal/events"

// Options holds the dashboard toggles and publishes every change.
type Options struct {
	SetRuler *events.Topic[bool]
	SetLazy  *events.Topic[bool]
	GridView *events.Topic[string]

	ruler bool
	lazy  bool
	view  string
}

func NewOptions() *Options {
	return &Options{
		SetRuler: events.NewTopic[bool]("set-ruler"),
		SetLazy:  events.NewTopic[bool]("set-lazy"),
		GridView: events.NewTopic[string]("change-grid-view"),
		view:     ViewList,
	}
}

func (o *Options) ToggleRuler(checked bool) {
	o.ruler = checked
	o.SetRuler.Publish(checked)
}

func (o *Options) ToggleLazy(checked bool) {
	o.lazy = checked
	o.SetLazy.Publish(checked)
}

// ChangeGridView publishes the chosen layout as given.
func (o *Options) ChangeGridView(view string) {
	o.view = view
	o.GridView.Publish(view)
}

func (o *Options) Ruler() bool  { return o.ruler }
func (o *Options) Lazy() bool   { return o.lazy }
func (o *Options) View() string { return o.view }
