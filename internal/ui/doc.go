// Package ui holds the styling shared by cw's line-oriented command output:
// semantic colors, status symbols and the one-line status printers the
// CLI uses for confirmations and warnings.
//
// The full-screen dashboard has its own palette in package tui.
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
