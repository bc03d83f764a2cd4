package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rileyhilliard/cw/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but cw only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade cw or lower the version field")
	}

	if err := validateServer(cfg.Server); err != nil {
		return err
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Timeout must be positive, got %s", cfg.Timeout),
			"Use a duration like 10s or 1m")
	}

	switch cfg.Dashboard.View {
	case ViewList, ViewGrid:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown dashboard view '%s'", cfg.Dashboard.View),
			"Use 'list' or 'grid'")
	}

	for i, f := range cfg.Export.Formats {
		if strings.TrimSpace(f) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Export format #%d is empty", i+1),
				"Remove the empty entry from export.formats")
		}
	}

	return nil
}

func validateServer(server string) error {
	if server == "" {
		return errors.New(errors.ErrConfig,
			"No server configured",
			"Set 'server' in .cw.yaml, pass --server, or export CW_SERVER")
	}

	u, err := url.Parse(server)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Server '%s' is not a valid URL", server),
			"Use a full URL like http://localhost:8080")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Server '%s' must use http or https", server),
			"Use a full URL like http://localhost:8080")
	}
	if u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Server '%s' has no host", server),
			"Use a full URL like http://localhost:8080")
	}
	return nil
}
