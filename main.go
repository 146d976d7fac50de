// pagegen – component route page generator for the deepyr showcase app.
// Renders one Dart page file per configured UI component from an embedded
// template and writes it into the downstream Jaspr project tree.
package main

import (
	"fmt"
	"os"

	"github.com/deepyr/pagegen/cmd"
	"github.com/deepyr/pagegen/internal/exitcode"
	_ "github.com/deepyr/pagegen/schemas"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitcode.Of(err))
	}
}
