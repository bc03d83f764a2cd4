package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// View names accepted by dashboard.view.
const (
	ViewList = "list"
	ViewGrid = "grid"
)

// Config represents the complete .cw.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Server    string          `yaml:"server" mapstructure:"server"`
	Timeout   time.Duration   `yaml:"timeout" mapstructure:"timeout"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
}

// DashboardConfig holds the initial state of the dashboard options.
type DashboardConfig struct {
	// Lazy defers loading graphs until they scroll into view.
	Lazy bool `yaml:"lazy" mapstructure:"lazy"`

	// View is the grid layout: "list" (one graph per row) or "grid".
	View string `yaml:"view" mapstructure:"view"`

	// Ruler shows the time ruler above the graphs.
	Ruler bool `yaml:"ruler" mapstructure:"ruler"`
}

// ExportConfig controls the image export dialog.
type ExportConfig struct {
	// Formats offered when exporting a graph image, in display order.
	Formats []string `yaml:"formats" mapstructure:"formats"`
}

// DefaultFormats are the image formats rrdtool can render.
var DefaultFormats = []string{"png", "svg", "eps", "pdf"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	formats := make([]string, len(DefaultFormats))
	copy(formats, DefaultFormats)

	return &Config{
		Version: CurrentConfigVersion,
		Server:  "http://localhost:8080",
		Timeout: 10 * time.Second,
		Dashboard: DashboardConfig{
			Lazy:  false,
			View:  ViewList,
			Ruler: false,
		},
		Export: ExportConfig{
			Formats: formats,
		},
	}
}
