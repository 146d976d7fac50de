package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/doctor"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check prerequisites for generating and compiling pages",
	Long: `Verifies that the manifest is loadable and schema-valid, that the target
directory is writable, that the preview files imported by generated pages
exist, and that the dart tool is available.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	_ = args
	output.Init(verbosity > 0, jsonOutput)

	m, _, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	root, _ := filepath.Abs(repoRoot)
	env := doctor.Env{
		Root:         root,
		ManifestPath: localConfigPath(),
		Manifest:     m,
	}

	summary := doctor.RunAll(cmd.Context(), doctor.NewRealExecutor(), env)
	doctor.PrintResults(summary)

	if summary.HasFailure {
		return exitcode.Wrap(exitcode.Generic, fmt.Errorf("%d critical check(s) failed", summary.TotalFail))
	}
	return nil
}
