package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the manifest against schema and consistency checks",
	Long: `Runs the validation suite:

  1. pagegen.yaml schema validation
  2. Cross checks (duplicate names, identifier shape, extension sanity)

Multi-word component names produce a warning because only the first letter
is capitalized in the generated class name.`,
	RunE: runValidate,
}

var validateStrict bool

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "fail on warnings")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_ = cmd
	_ = args
	output.Init(verbosity > 0, jsonOutput)

	m, manifestPath, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}
	source := manifestPath
	if source == "" {
		source = "built-in defaults"
	}

	schemaResult, err := config.Validate(m)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("schema validation error: %w", err))
	}

	checks := make([]config.CrossCheck, 0, 24)
	if schemaResult.Valid {
		checks = append(checks, config.CrossCheck{Name: "schema", Status: "pass", Message: "manifest matches schema"})
	} else {
		for _, e := range schemaResult.Errors {
			checks = append(checks, config.CrossCheck{Name: "schema", Status: "error", Message: fmt.Sprintf("%s: %s", e.Field, e.Description)})
		}
	}
	checks = append(checks, config.ValidateCross(m)...)

	errorsCount := 0
	warningsCount := 0
	for _, c := range checks {
		switch c.Status {
		case "error":
			errorsCount++
		case "warning":
			warningsCount++
		}
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"manifest": source,
			"checks":   checks,
			"errors":   errorsCount,
			"warnings": warningsCount,
		})
	} else {
		fmt.Fprintf(os.Stderr, "🔎 Validating: %s\n\n", source)
		for _, c := range checks {
			icon := "✅"
			if c.Status == "warning" {
				icon = "⚠️"
			}
			if c.Status == "error" {
				icon = "❌"
			}
			fmt.Fprintf(os.Stderr, "  %s %s: %s\n", icon, c.Name, c.Message)
		}
		fmt.Fprintln(os.Stderr)
	}

	if errorsCount > 0 {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d validation error(s) found", errorsCount))
	}
	if warningsCount > 0 && validateStrict {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d warning(s) found (strict mode)", warningsCount))
	}

	if !jsonOutput {
		color.New(color.FgGreen, color.Bold).Fprintf(os.Stderr, "✅ Validation passed (%d checks, %d warnings)\n", len(checks), warningsCount)
	}

	return nil
}
