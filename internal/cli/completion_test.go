package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cw",
		Short: "Terminal dashboard for collectd-web",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "# bash completion for cw")
	assert.Contains(t, output, "__cw_debug")
	assert.Contains(t, output, "complete -o default -F __start_cw cw")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenZshCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "#compdef cw")
	assert.Contains(t, output, "_cw()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenFishCompletion(&buf, true))

	output := buf.String()
	assert.Contains(t, output, "fish completion for cw")
	assert.Contains(t, output, "complete -c cw")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenPowerShellCompletion(&buf))

	output := buf.String()
	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_cw", "should have start function")
	assert.Contains(t, output, "_cw_root_command", "should have root command function")

	// Commands with local flags get their own functions
	assert.Contains(t, output, "_cw_dashboard()")
	assert.Contains(t, output, "_cw_hosts()")
	assert.Contains(t, output, "_cw_completion()")
}
