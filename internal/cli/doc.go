// Package cli implements the cw command-line interface.
//
// Each subcommand is a cobra.Command whose RunE resolves the config, builds
// an api.Client and hands off to a plain function taking an io.Writer and
// the narrow dashboard interface it needs, so the logic is testable without
// cobra or a live server.
//
// # Command Structure
//
//	cw dashboard                  - Interactive graph dashboard (TUI)
//	cw hosts                      - List hosts
//	cw plugins <host>             - List a host's plugins
//	cw graphs <plugin-url>        - List a plugin's graphs
//	cw sign <graph-url>...        - Signed export links
//	cw graphdefs [name]           - Graph definitions
//	cw config [init|set|show]     - Manage the config file
//	cw version | completion
//
// # Flag Handling
//
// Global flags (--config, --server, --timeout, --no-color) live on the root
// command; the first three override the config file for every subcommand.
// Listing commands share --filter and --json through AddListFlags, and
// --json switches errors to the JSONEnvelope format as well.
package cli
