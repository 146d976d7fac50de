package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save marshals the Manifest to YAML and writes it to the specified path.
func Save(m *Manifest, path string) error {
	if m == nil {
		return fmt.Errorf("manifest cannot be nil")
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest to %s: %w", path, err)
	}
	return nil
}

// AddComponent appends a component name to the manifest, checking the name
// shape and rejecting duplicates.
func AddComponent(m *Manifest, name string) error {
	if m == nil {
		return fmt.Errorf("manifest cannot be nil")
	}
	if err := ValidComponentName(name); err != nil {
		return err
	}
	for _, c := range m.Spec.Components {
		if c == name {
			return fmt.Errorf("component %q already exists", name)
		}
	}
	m.Spec.Components = append(m.Spec.Components, name)
	return nil
}

// RemoveComponent removes a component name from the manifest. It does not
// delete any previously generated file.
func RemoveComponent(m *Manifest, name string) error {
	if m == nil {
		return fmt.Errorf("manifest cannot be nil")
	}
	for i, c := range m.Spec.Components {
		if c == name {
			m.Spec.Components = append(m.Spec.Components[:i], m.Spec.Components[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("component %q not found", name)
}
