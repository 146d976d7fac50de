package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/deepyr/pagegen/schemas" // ensure JSON schema is loaded
)

// executeCommand runs a CLI command and captures output.
func executeCommand(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	// Reset all flag defaults to avoid state leaking between tests.
	resetFlags := func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	resetFlags(rootCmd)
	for _, sub := range rootCmd.Commands() {
		resetFlags(sub)
	}

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

// ── Root command ────────────────────────────────────────────

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pagegen")
	assert.Contains(t, stdout, "generate")
}

// ── Version command ─────────────────────────────────────────

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pagegen version")
}

// ── Schema command ──────────────────────────────────────────

func TestSchemaCmd(t *testing.T) {
	stdout, _, err := executeCommand("schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pagegen component routes manifest")
	assert.Contains(t, stdout, "\"apiVersion\"")
}
