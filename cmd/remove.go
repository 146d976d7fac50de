package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/output"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a component from the manifest",
	Long: `Removes a component name from pagegen.yaml. A page file generated on an
earlier run is not deleted; pagegen does not track generated output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	_ = cmd
	output.Init(verbosity > 0, jsonOutput)

	m, manifestPath, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	name := args[0]
	if err := config.RemoveComponent(m, name); err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	path := manifestPath
	if path == "" {
		path = localConfigPath()
	}
	if dryRun {
		output.Info(fmt.Sprintf("dry-run: would remove %q from %s", name, path))
		return nil
	}
	if err := config.Save(m, path); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{"removed": name, "components": len(m.Spec.Components)})
		return nil
	}
	output.Success(fmt.Sprintf("Removed %q, %d component(s) configured", name, len(m.Spec.Components)))
	return nil
}
