// Package dashboard implements the view components of the cw dashboard and
// the composition root that wires them together.
//
// # Components
//
//	HostList         - lists hosts, filters them, publishes show-graphes
//	PluginList       - lists a host's plugins, publishes got-graphes
//	Grid             - owns the graph widgets, selection and bulk commands
//	Toolbar          - date range, timespan presets, bulk grid commands
//	Options          - ruler, grid/list view and lazy loading toggles
//	ErrorPresenter   - modal error message
//	FormatPresenter  - image format links for one graph
//	ExportPresenter  - signed export URLs for a set of graphs
//	Ruler            - time ruler shown over the grid
//	GraphDefs        - graph definition browser
//
// # Event Flow
//
// Components never reference each other directly. Each one owns the topics
// it publishes (see package events) and New subscribes handlers once:
//
//	HostList.ShowGraphs        -> Grid.DisplayGraphs
//	Toolbar.SetDates           -> Grid.SetDates
//	Toolbar.ChangeTimespan     -> Grid.SetTimespan
//	Toolbar.SelectAll/None     -> Grid.SelectAll/SelectNone
//	Toolbar.MoveAll*/ZoomAll*  -> Grid.MoveAll*/ZoomAll*
//	Toolbar.Error              -> ErrorPresenter.Show
//	Options.GridView           -> Grid.SetView
//	Options.SetLazy            -> Grid.SetLazy
//	Options.SetRuler           -> Ruler.Show/Hide
//
// Widgets publish select, export and export-link; the grid subscribes to
// those of every widget it displays.
//
// # Threading
//
// Every method is meant to run on a single UI goroutine. Network fetches go
// through a Runner, which runs the blocking part elsewhere and applies the
// returned callback back on the UI goroutine. Fetches are never cancelled, so
// a slow response can overwrite a newer one.
package dashboard
