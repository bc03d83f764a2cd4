package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/cw/internal/api"
	"github.com/rileyhilliard/cw/internal/config"
	"github.com/rileyhilliard/cw/internal/errors"
	"github.com/rileyhilliard/cw/internal/logger"
	"github.com/rileyhilliard/cw/internal/tui"
	"github.com/rileyhilliard/cw/internal/ui"
)

// debugLogFile is used when CW_DEBUG is set without --log-file.
const debugLogFile = "cw-debug.log"

// dashboard command flags
var (
	dashLazy    bool
	dashView    string
	dashRuler   bool
	dashLogFile string
)

// dashboardOptions are the dashboard flags that were set explicitly.
// Nil fields keep the config value.
type dashboardOptions struct {
	Lazy    *bool
	View    *string
	Ruler   *bool
	LogFile string
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive graph dashboard",
	Long: `Open the full-screen dashboard: pick a host, pick a plugin, then select,
pan, zoom and export its graphs. Press ? inside for the key reference.

The config file is watched while the dashboard runs; edits to the
dashboard section apply without restarting.

Examples:
  cw dashboard
  cw dashboard --view grid --lazy
  cw dashboard --log-file /tmp/cw.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := dashboardOptions{LogFile: dashLogFile}
		if cmd.Flags().Changed("lazy") {
			opts.Lazy = &dashLazy
		}
		if cmd.Flags().Changed("view") {
			opts.View = &dashView
		}
		if cmd.Flags().Changed("ruler") {
			opts.Ruler = &dashRuler
		}
		return dashboardCommand(opts)
	},
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashLazy, "lazy", false, "load graphs only when they scroll into view")
	dashboardCmd.Flags().StringVar(&dashView, "view", config.ViewList, "graph layout: list or grid")
	dashboardCmd.Flags().BoolVar(&dashRuler, "ruler", false, "show the time ruler")
	dashboardCmd.Flags().StringVar(&dashLogFile, "log-file", "", "write logs to this file")
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(opts dashboardOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTUI,
			"The dashboard needs an interactive terminal",
			"Run it from a terminal, or use 'cw hosts', 'cw plugins' and 'cw graphs' in scripts.")
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyDashboardFlags(cfg, opts); err != nil {
		return err
	}

	closeLog, err := setupLogging(opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	model := tui.New(tuiOptions(cfg, client))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if path != "" {
		watcher, err := config.Watch(path, func(c *config.Config, err error) {
			p.Send(tui.ConfigReloadedMsg{Config: c, Err: err})
		})
		if err != nil {
			ui.PrintWarning(os.Stderr, fmt.Sprintf("Config changes won't apply until restart: %v", err))
		} else {
			defer watcher.Close()
		}
	}

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Dashboard().Close()
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTUI,
			"The dashboard exited with an error",
			"Re-run with --log-file to capture details.")
	}
	return nil
}

// applyDashboardFlags overrides the dashboard section of cfg with the flags
// that were set.
func applyDashboardFlags(cfg *config.Config, opts dashboardOptions) error {
	if opts.Lazy != nil {
		cfg.Dashboard.Lazy = *opts.Lazy
	}
	if opts.Ruler != nil {
		cfg.Dashboard.Ruler = *opts.Ruler
	}
	if opts.View != nil {
		view, err := ParseView(*opts.View)
		if err != nil {
			return err
		}
		cfg.Dashboard.View = view
	}
	return nil
}

// setupLogging routes the standard logger away from the terminal while the
// alt screen is active: to a file when one is requested (or CW_DEBUG is
// set), otherwise nowhere. The returned func restores stderr.
func setupLogging(path string) (func(), error) {
	if path == "" && logger.DebugEnabled() {
		path = debugLogFile
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(path, "cw")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't open log file %s", path),
			"Pass a writable path to --log-file.")
	}
	return func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		f.Close()
	}, nil
}

// tuiOptions builds the dashboard model options from the resolved config.
func tuiOptions(cfg *config.Config, client *api.Client) tui.Options {
	return tui.Options{
		Source:  client,
		Resolve: resolver(client),
		Server:  cfg.Server,
		Formats: cfg.Export.Formats,
		Lazy:    cfg.Dashboard.Lazy,
		View:    cfg.Dashboard.View,
		Ruler:   cfg.Dashboard.Ruler,
		Logger:  logger.NewEnvLogger("[dashboard]"),
	}
}

// resolver adapts Client.Resolve to the TUI's infallible form; references
// that fail to parse are shown as-is.
func resolver(client *api.Client) func(string) string {
	return func(ref string) string {
		abs, err := client.Resolve(ref)
		if err != nil {
			return ref
		}
		return abs
	}
}
