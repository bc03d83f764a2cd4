// Package tui runs the cw dashboard in the terminal with Bubble Tea.
//
// The Model owns a dashboard.Dashboard and renders its components:
//
//	┌ header: server, host/graph counts, loading spinner ┐
//	│ toolbar: home | pan-zoom | timespan section        │
//	├ hosts ────┬ graph cards (viewport) ─────────────────┤
//	│ plugins   │                                         │
//	└ footer: short key help ─────────────────────────────┘
//
// Network work requested by the dashboard goes through cmdRunner, which turns
// each request into a tea.Cmd and applies the result on the update loop, so
// dashboard components are only ever touched from Update.
//
// # Keyboard Shortcuts
//
//	tab           cycle focus: hosts, plugins, graphs
//	/             filter the focused list
//	enter         open the host or plugin under the cursor
//	space         toggle selection of the graph under the cursor
//	a / n         select all / none
//	< >           pan backward / forward
//	+ -           zoom in / out
//	1-5           last hour, day, week, month, year
//	d             enter a date range
//	o             image format links of the graph
//	x             signed export links
//	g             toggle grid / list view
//	z             toggle lazy loading
//	R  { }        toggle ruler, move ruler
//	D             browse graph definitions
//	t             next toolbar section
//	?             help
//	q             quit
package tui
