package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/exitcode"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the manifest JSON Schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		data := config.GetSchema()
		if len(data) == 0 {
			return exitcode.Wrap(exitcode.Generic, fmt.Errorf("embedded schema not loaded"))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
