// Package schemas embeds the manifest JSON Schema and registers it with the
// config package on import. CLI entry points should import this package with
// a blank identifier: import _ "github.com/deepyr/pagegen/schemas"
package schemas

import (
	"embed"

	"github.com/deepyr/pagegen/internal/config"
)

//go:embed pagegen-v1.schema.json
var fs embed.FS

func init() {
	data, err := fs.ReadFile("pagegen-v1.schema.json")
	if err != nil {
		panic("schemas: failed to read embedded pagegen-v1.schema.json: " + err.Error())
	}
	config.SetSchema(data)
}
