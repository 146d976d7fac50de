package config

const (
	DefaultAPIVersion = "pagegen/v1"
	DefaultKind       = "ComponentRoutes"
	DefaultTargetDir  = "examples/deepyr_example/lib/pages/component_routes"
	DefaultExtension  = ".dart"
	DefaultTemplate   = "page"
)

// DefaultComponents returns the built-in component list. "button" and "home"
// are excluded because their pages are handwritten in the downstream project.
func DefaultComponents() []string {
	return []string{
		"alert",
		"badge",
		"card",
		"checkbox",
		"divider",
		"input",
		"link",
		"loading",
		"progress",
		"radio",
		"select",
		"textarea",
		"toggle",
	}
}

// ApplyDefaults fills in default values for optional fields that were not
// specified in the YAML. It is called after parsing and before validation.
// A nil Components slice (key absent) gets the default list; an explicitly
// empty list is left empty.
func ApplyDefaults(m *Manifest) {
	if m.APIVersion == "" {
		m.APIVersion = DefaultAPIVersion
	}
	if m.Kind == "" {
		m.Kind = DefaultKind
	}
	if m.Spec.TargetDir == "" {
		m.Spec.TargetDir = DefaultTargetDir
	}
	if m.Spec.Extension == "" {
		m.Spec.Extension = DefaultExtension
	}
	if m.Spec.Template == "" {
		m.Spec.Template = DefaultTemplate
	}
	if m.Spec.Components == nil {
		m.Spec.Components = DefaultComponents()
	}
}

// DefaultManifest returns the manifest used when no pagegen.yaml exists,
// preserving the zero-configuration invocation contract.
func DefaultManifest() *Manifest {
	m := &Manifest{
		Metadata: Metadata{
			Name:    "deepyr-example",
			Project: "deepyr_example",
		},
	}
	ApplyDefaults(m)
	return m
}
