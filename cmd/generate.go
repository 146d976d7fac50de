package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/generator"
	"github.com/deepyr/pagegen/internal/output"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate route page files for all configured components",
	Long: `Renders the page template once per configured component and writes
<name>_page.dart into the target directory, creating the directory (with any
missing parents) first. Existing files are overwritten silently; unrelated
files in the directory are left alone.

The run is a single linear pass in manifest order. The first filesystem
failure aborts the run; files already written stay in place, and re-running
is idempotent.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = cmd
	_ = args
	output.Init(verbosity > 0, jsonOutput)

	m, manifestPath, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}
	if manifestPath == "" {
		output.Debug("no pagegen.yaml found; using built-in defaults")
	} else {
		output.Debug("using manifest", "path", manifestPath)
	}

	schemaResult, err := config.Validate(m)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("schema validation error: %w", err))
	}
	if !schemaResult.Valid {
		for _, e := range schemaResult.Errors {
			output.Error(fmt.Sprintf("%s: %s", e.Field, e.Description))
		}
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("manifest validation failed with %d error(s)", len(schemaResult.Errors)))
	}

	engine, err := generator.NewEngine()
	if err != nil {
		return err
	}
	files, err := engine.RenderAll(m)
	if err != nil {
		return exitcode.Wrap(exitcode.Render, err)
	}

	targetDir := resolveTargetDir(m)
	writer := generator.Writer{DryRun: dryRun}

	created, err := writer.EnsureDir(targetDir)
	if err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}
	if created {
		output.Info("Created directory: " + targetDir)
	}

	output.Info("Starting file generation...")
	written := make([]string, 0, len(files))
	for _, f := range files {
		path, writeErr := writer.WriteFile(f, targetDir)
		if writeErr != nil {
			return exitcode.Wrap(exitcode.IO, writeErr)
		}
		output.Step("created " + path)
		written = append(written, path)
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"targetDir": targetDir,
			"files":     written,
			"dryRun":    dryRun,
		})
		return nil
	}
	if dryRun {
		output.Success(fmt.Sprintf("Dry run complete, %d file(s) would be written", len(written)))
	} else {
		output.Success(fmt.Sprintf("File generation complete, %d file(s) written", len(written)))
	}
	return nil
}
