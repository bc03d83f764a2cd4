package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cw/internal/config"
	"github.com/rileyhilliard/cw/internal/errors"
)

// ListFlags holds the flags shared by the listing commands.
type ListFlags struct {
	Filter string
	JSON   bool
}

// AddListFlags registers --filter and --json on a listing command.
func AddListFlags(cmd *cobra.Command, flags *ListFlags) {
	cmd.Flags().StringVar(&flags.Filter, "filter", "", "only show names containing this text (case-insensitive)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "output as JSON")
}

// ParseTimeout parses a timeout flag into a duration.
// Returns zero duration if the flag is empty.
func ParseTimeout(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid timeout", flag),
			"Try something like 5s, 2m, or 500ms.")
	}
	if duration <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Timeout must be positive, got %s", flag),
			"Try something like 5s, 2m, or 500ms.")
	}
	return duration, nil
}

// ParseView checks a --view flag value.
func ParseView(flag string) (string, error) {
	switch flag {
	case config.ViewList, config.ViewGrid:
		return flag, nil
	}
	return "", errors.New(errors.ErrInput,
		fmt.Sprintf("Unknown view '%s'", flag),
		"Use --view list or --view grid.")
}
