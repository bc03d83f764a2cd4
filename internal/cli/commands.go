package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cw/internal/api"
	"github.com/rileyhilliard/cw/internal/errors"
)

// Listing command flags
var (
	hostsFlags   ListFlags
	pluginsFlags ListFlags
	graphsFlags  ListFlags
	signJSON     bool
	defsJSON     bool
)

// hostsCmd lists the hosts known to the server
var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List hosts",
	Long: `List the hosts the collectd-web server has data for, sorted by URL.

Examples:
  cw hosts
  cw hosts --filter web
  cw hosts --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = hostsFlags.JSON
		client, err := loadClient()
		if err != nil {
			return err
		}
		return hostsCommand(cmd.Context(), cmd.OutOrStdout(), client, hostsFlags)
	},
}

// pluginsCmd lists the plugins of one host
var pluginsCmd = &cobra.Command{
	Use:   "plugins <host>",
	Short: "List a host's plugins",
	Long: `List the plugins collected on a host. The host can be given by name
or by the URL printed by 'cw hosts'.

Examples:
  cw plugins web-1
  cw plugins /hosts/web-1/ --filter cpu`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = pluginsFlags.JSON
		client, err := loadClient()
		if err != nil {
			return err
		}
		return pluginsCommand(cmd.Context(), cmd.OutOrStdout(), client, api.HostURL(args[0]), pluginsFlags)
	},
}

// graphsCmd lists the graphs of one plugin
var graphsCmd = &cobra.Command{
	Use:   "graphs <plugin-url> | <host> <plugin>",
	Short: "List a plugin's graphs",
	Long: `List the graph images of a plugin, given either the plugin URL printed
by 'cw plugins' or a host and plugin name.

Examples:
  cw graphs /hosts/web-1/load/
  cw graphs web-1 load --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = graphsFlags.JSON
		pluginURL := args[0]
		if len(args) == 2 {
			pluginURL = api.PluginURL(args[0], args[1])
		}
		client, err := loadClient()
		if err != nil {
			return err
		}
		return graphsCommand(cmd.Context(), cmd.OutOrStdout(), client, pluginURL, graphsFlags)
	},
}

// signCmd exchanges graph URLs for signed export URLs
var signCmd = &cobra.Command{
	Use:   "sign <graph-url>...",
	Short: "Create signed links to graph images",
	Long: `Ask the server to sign graph URLs so they can be shared without
access to the dashboard. Prints one signed URL per input, in order.

Examples:
  cw sign /hosts/web-1/load/load.png
  cw graphs web-1 load | awk '{print $2}' | xargs cw sign`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = signJSON
		client, err := loadClient()
		if err != nil {
			return err
		}
		return signCommand(cmd.Context(), cmd.OutOrStdout(), client, args, signJSON)
	},
}

// graphdefsCmd shows the server's graph definitions
var graphdefsCmd = &cobra.Command{
	Use:   "graphdefs [name]",
	Short: "Show graph definitions",
	Long: `List the names of the graph definitions the server renders with, or
print the definition of one of them.

Examples:
  cw graphdefs
  cw graphdefs load`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = defsJSON
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		client, err := loadClient()
		if err != nil {
			return err
		}
		return graphDefsCommand(cmd.Context(), cmd.OutOrStdout(), client, name, defsJSON)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for cw.

Examples:
  # Bash
  cw completion bash > /etc/bash_completion.d/cw

  # Zsh
  cw completion zsh > "${fpath[1]}/_cw"

  # Fish
  cw completion fish > ~/.config/fish/completions/cw.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	AddListFlags(hostsCmd, &hostsFlags)
	AddListFlags(pluginsCmd, &pluginsFlags)
	AddListFlags(graphsCmd, &graphsFlags)
	signCmd.Flags().BoolVar(&signJSON, "json", false, "output as JSON")
	graphdefsCmd.Flags().BoolVar(&defsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(pluginsCmd)
	rootCmd.AddCommand(graphsCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(graphdefsCmd)
	rootCmd.AddCommand(completionCmd)
}
