package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cw/internal/config"
	"github.com/rileyhilliard/cw/internal/errors"
	"github.com/rileyhilliard/cw/internal/ui"
	"github.com/rileyhilliard/cw/internal/util"
)

// settableKeys are the scalar config keys 'cw config set' accepts.
var settableKeys = map[string]bool{
	"server":          true,
	"timeout":         true,
	"dashboard.lazy":  true,
	"dashboard.view":  true,
	"dashboard.ruler": true,
}

var (
	configInitForce bool
	configShowJSON  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cw config file",
	Long: `Create, inspect and edit the cw config file.

cw looks for --config, then .cw.yaml in the current directory and its
parents, then ~/.config/cw/config.yaml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .cw.yaml",
	Long: `Write a config file with the default settings to .cw.yaml in the
current directory, or to the --config path.

Examples:
  cw config init
  cw --config ~/.config/cw/config.yaml config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitCommand(cmd.OutOrStdout(), configTarget(cfgFile), configInitForce)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one config value",
	Long: `Change one value in the config file, keeping its comments and layout.

Keys: server, timeout, dashboard.lazy, dashboard.view, dashboard.ruler

Examples:
  cw config set server http://stats.internal:8080
  cw config set dashboard.view grid`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		return configSetCommand(cmd.OutOrStdout(), path, args[0], args[1])
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Long: `Print the config cw would use, after environment variables and the
--server and --timeout flags are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = configShowJSON
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		return configShowCommand(cmd.OutOrStdout(), cfg, path, configShowJSON)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configTarget is the file 'config init' writes.
func configTarget(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return config.ConfigFileName
}

func configInitCommand(w io.Writer, path string, force bool) error {
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}
	ui.PrintSuccess(w, "Wrote "+path)
	return nil
}

// configSetCommand updates key in the file at path. The file is restored
// when the result would not load or validate.
func configSetCommand(w io.Writer, path, key, value string) error {
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Couldn't find a config file to edit",
			"Run 'cw config init' first.")
	}
	if !settableKeys[key] {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown config key '%s'", key),
			"Settable keys: "+util.JoinOrNone(sortedKeys(settableKeys)))
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't read %s", path),
			"Check file permissions")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't update %s", path), "")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0o644); restoreErr != nil {
			return errors.WrapWithCode(restoreErr, errors.ErrConfig,
				fmt.Sprintf("Couldn't restore %s after an invalid edit", path), "")
		}
		return err
	}

	ui.PrintSuccess(w, fmt.Sprintf("%s = %s %s", key, value, ui.MutedStyle().Render("("+path+")")))
	return nil
}

func configShowCommand(w io.Writer, cfg *config.Config, path string, asJSON bool) error {
	if asJSON {
		return WriteJSONSuccess(w, map[string]interface{}{
			"path":    path,
			"version": cfg.Version,
			"server":  cfg.Server,
			"timeout": cfg.Timeout.String(),
			"dashboard": map[string]interface{}{
				"lazy":  cfg.Dashboard.Lazy,
				"view":  cfg.Dashboard.View,
				"ruler": cfg.Dashboard.Ruler,
			},
			"export": map[string]interface{}{
				"formats": cfg.Export.Formats,
			},
		})
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(w, "# no config file found, showing defaults")
	} else {
		fmt.Fprintf(w, "# %s\n", path)
	}
	_, err = w.Write(data)
	return err
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
