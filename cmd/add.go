package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/output"
	"github.com/deepyr/pagegen/internal/wizard"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a component to the manifest",
	Long: `Appends a component name to pagegen.yaml (creating the manifest from the
built-in defaults when it does not exist yet). Without an argument an
interactive prompt collects the name; in CI mode the argument is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	_ = cmd
	output.Init(verbosity > 0, jsonOutput)

	m, _, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	var name string
	if len(args) == 1 {
		name = args[0]
		if addErr := config.AddComponent(m, name); addErr != nil {
			return exitcode.Wrap(exitcode.Validation, addErr)
		}
	} else {
		if effectiveCIMode() {
			return exitcode.Wrap(exitcode.Validation, errors.New("component name argument is required in CI mode"))
		}
		name, err = wizard.RunAddComponent(wizard.NewSurveyPrompter(), m)
		if err != nil {
			return exitcode.Wrap(exitcode.Validation, err)
		}
	}

	path := localConfigPath()
	if dryRun {
		output.Info(fmt.Sprintf("dry-run: would add %q to %s", name, path))
		return nil
	}
	if err := config.Save(m, path); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{"added": name, "components": len(m.Spec.Components)})
		return nil
	}
	output.Success(fmt.Sprintf("Added %q, %d component(s) configured", name, len(m.Spec.Components)))
	return nil
}
