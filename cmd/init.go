package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/output"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter pagegen.yaml manifest",
	Long: `Writes a pagegen.yaml populated with the built-in defaults: the standard
component list and the deepyr_example target directory. Edit the file to
change what gets generated.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing manifest")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	_ = cmd
	_ = args
	output.Init(verbosity > 0, jsonOutput)

	path := localConfigPath()
	if _, err := os.Stat(path); err == nil && !initForce {
		return exitcode.Wrap(exitcode.Generic,
			output.NewErrorWithFix(fmt.Sprintf("manifest %s already exists", path), "pass --force to overwrite"))
	}

	if dryRun {
		output.Info("dry-run: would write " + path)
		return nil
	}

	if err := config.Save(config.DefaultManifest(), path); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}

	if jsonOutput {
		output.JSON(map[string]string{"manifest": path})
		return nil
	}
	output.Success("Wrote " + path)
	return nil
}
