// Package config defines the pagegen.yaml manifest, its defaults, and its
// validation (JSON Schema plus cross checks).
package config

// Manifest is the parsed pagegen.yaml document. It is the single source of
// truth for what gets generated: the component list, the target directory,
// and the template to render.
type Manifest struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Spec       Spec     `yaml:"spec" json:"spec"`
}

// Metadata carries optional descriptive fields.
type Metadata struct {
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Project string `yaml:"project,omitempty" json:"project,omitempty"`
}

// Spec holds the generation inputs.
type Spec struct {
	// TargetDir is where generated page files are written, relative to the
	// repo root unless absolute.
	TargetDir string `yaml:"targetDir" json:"targetDir"`

	// Extension is the generated file extension, including the leading dot.
	Extension string `yaml:"extension,omitempty" json:"extension,omitempty"`

	// Template is the base name of the embedded template to render.
	Template string `yaml:"template,omitempty" json:"template,omitempty"`

	// Components is the ordered list of lowercase component names. A missing
	// key falls back to the built-in default list; an explicitly empty list
	// generates nothing.
	Components []string `yaml:"components" json:"components"`
}
