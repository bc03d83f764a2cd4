package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cw/internal/api"
	"github.com/rileyhilliard/cw/internal/config"
	"github.com/rileyhilliard/cw/internal/logger"
	"github.com/rileyhilliard/cw/internal/ui"
	"github.com/rileyhilliard/cw/internal/util"
)

// Global flags
var (
	cfgFile     string
	serverFlag  string
	timeoutFlag string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "cw",
	Short: "Terminal dashboard for collectd-web",
	Long: `cw browses the hosts, plugins and graphs of a collectd-web server.

Run 'cw dashboard' for the interactive view, or use the listing commands
(hosts, plugins, graphs) from scripts.

Examples:
  cw dashboard
  cw --server http://stats.internal:8080 hosts --filter web
  cw graphs web-1 load --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			fmt.Fprintln(os.Stderr, unknownCommandHint(err, commandNames(rootCmd)))
			os.Exit(2)
		}
		if MachineMode() {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprint(os.Stderr, err.Error())
			if !strings.HasSuffix(err.Error(), "\n") {
				fmt.Fprintln(os.Stderr)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .cw.yaml or ~/.config/cw/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "collectd-web server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&timeoutFlag, "timeout", "", "request timeout, e.g. 5s or 1m (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// isUnknownCommandError reports whether err came from cobra's argument
// parsing rather than from a command.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "cw"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandHint explains a cobra parse error and suggests close
// command names.
func unknownCommandHint(err error, names []string) string {
	name := extractUnknownCommand(err)
	if name == "" || strings.HasPrefix(name, "-") {
		return err.Error()
	}

	msg := fmt.Sprintf("%s '%s' isn't a cw command.", ui.SymbolFail, name)
	if similar := util.SuggestSimilar(name, names, 3); len(similar) > 0 {
		msg += " Did you mean: " + util.JoinOrNone(similar) + "?"
	}
	return msg + "\nRun 'cw --help' to see the available commands."
}

// commandNames lists the visible subcommands of cmd.
func commandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

// loadConfig resolves the config file, applies the global flag overrides and
// validates the result. The returned path is empty when defaults were used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}

	if err := applyOverrides(cfg, serverFlag, timeoutFlag); err != nil {
		return nil, "", err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOverrides copies non-empty --server and --timeout values into cfg.
func applyOverrides(cfg *config.Config, server, timeout string) error {
	if server != "" {
		cfg.Server = strings.TrimRight(server, "/")
	}

	d, err := ParseTimeout(timeout)
	if err != nil {
		return err
	}
	if d > 0 {
		cfg.Timeout = d
	}
	return nil
}

// newClient builds the API client for cfg.
func newClient(cfg *config.Config) (*api.Client, error) {
	return api.New(cfg.Server, cfg.Timeout, api.WithLogger(logger.NewEnvLogger("[api]")))
}

// loadClient is loadConfig followed by newClient.
func loadClient() (*api.Client, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return newClient(cfg)
}
