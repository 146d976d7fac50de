package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/exitcode"
	"github.com/deepyr/pagegen/internal/generator"
	"github.com/deepyr/pagegen/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured components and their derived file names",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_ = args
	output.Init(verbosity > 0, jsonOutput)

	m, _, err := loadManifest()
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	type entry struct {
		Name    string `json:"name"`
		Class   string `json:"class"`
		File    string `json:"file"`
		Preview string `json:"preview"`
	}
	entries := make([]entry, 0, len(m.Spec.Components))
	for _, name := range m.Spec.Components {
		vars := generator.Derive(name, m.Spec.Extension)
		entries = append(entries, entry{
			Name:    name,
			Class:   vars.Pascal + "Page",
			File:    vars.FileName,
			Preview: vars.PreviewFileName,
		})
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"targetDir":  m.Spec.TargetDir,
			"components": entries,
		})
		return nil
	}

	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-14s %-18s %-24s %s\n", "COMPONENT", "CLASS", "FILE", "PREVIEW")
	for _, e := range entries {
		fmt.Fprintf(w, "%-14s %-18s %-24s %s\n", e.Name, e.Class, e.File, e.Preview)
	}
	fmt.Fprintf(w, "\n%d component(s), target: %s\n", len(entries), m.Spec.TargetDir)
	return nil
}
