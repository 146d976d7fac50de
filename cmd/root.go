// Package cmd implements the Cobra-based CLI for pagegen.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepyr/pagegen/internal/config"
)

var (
	cfgFile    string
	repoRoot   string
	verbosity  int
	dryRun     bool
	jsonOutput bool // --json flag for machine-readable output
	ciMode     bool
)

// rootCmd is the top-level command for pagegen.
var rootCmd = &cobra.Command{
	Use:   "pagegen",
	Short: "Component route page generator for the deepyr showcase app",
	Long: `pagegen generates the Dart route pages of the deepyr_example Jaspr
project: one <name>_page.dart file per configured UI component, each a thin
wrapper that renders the matching <name>Preview component.

The component list lives in pagegen.yaml (optional; built-in defaults apply
when absent). Generation is deterministic: the same manifest always produces
byte-identical files, and re-running simply overwrites.

Workflow: init → add/remove → validate → generate`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "manifest file (default: pagegen.yaml)")
	rootCmd.PersistentFlags().StringVar(&repoRoot, "repo-root", ".", "path to project repo root")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would be written without touching the filesystem")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "strict non-interactive mode (fails when required inputs are missing)")

	_ = viper.BindPFlag("repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("ci", rootCmd.PersistentFlags().Lookup("ci"))
}

func effectiveCIMode() bool {
	if ciMode {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(os.Getenv("CI")), "true")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("PAGEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbosity > 0 {
		fmt.Fprintln(os.Stderr, "Using manifest:", viper.ConfigFileUsed())
	}
}

// localConfigPath returns the manifest path honoring --config and --repo-root.
func localConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(repoRoot, "pagegen.yaml")
}

// loadManifest loads pagegen.yaml when present, falling back to the built-in
// default manifest so the zero-configuration invocation keeps working. The
// returned path is empty when defaults were used. An explicit --config that
// does not exist is an error.
func loadManifest() (*config.Manifest, string, error) {
	path := localConfigPath()
	if _, err := os.Stat(path); err != nil {
		if cfgFile != "" {
			return nil, "", fmt.Errorf("manifest %s not found: %w", path, err)
		}
		return config.DefaultManifest(), "", nil
	}
	m, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

// resolveTargetDir anchors a relative target directory at the repo root.
func resolveTargetDir(m *config.Manifest) string {
	dir := m.Spec.TargetDir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(repoRoot, dir)
}
