package config

import (
	"fmt"
	"regexp"
	"strings"
)

// componentNameRE matches the identifier shape expected by the downstream
// Dart project: lowercase, starting with a letter, underscores allowed.
var componentNameRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidComponentName checks a component name against the expected shape.
func ValidComponentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("component name is required")
	}
	if !componentNameRE.MatchString(name) {
		return fmt.Errorf("component name %q must be a lowercase identifier (letters, digits, underscores)", name)
	}
	return nil
}

// CrossCheck is the outcome of a single cross-validation check.
type CrossCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "pass", "warning", "error"
	Message string `json:"message"`
}

// ValidateCross runs consistency checks the JSON Schema cannot express:
// duplicate component names, the multi-word capitalization quirk, and
// extension/target sanity.
func ValidateCross(m *Manifest) []CrossCheck {
	checks := make([]CrossCheck, 0, len(m.Spec.Components)+3)

	if strings.TrimSpace(m.Spec.TargetDir) == "" {
		checks = append(checks, CrossCheck{Name: "target-dir", Status: "error", Message: "spec.targetDir must not be empty"})
	} else {
		checks = append(checks, CrossCheck{Name: "target-dir", Status: "pass", Message: m.Spec.TargetDir})
	}

	if !strings.HasPrefix(m.Spec.Extension, ".") {
		checks = append(checks, CrossCheck{Name: "extension", Status: "error", Message: fmt.Sprintf("spec.extension %q must begin with a dot", m.Spec.Extension)})
	} else {
		checks = append(checks, CrossCheck{Name: "extension", Status: "pass", Message: m.Spec.Extension})
	}

	seen := make(map[string]bool, len(m.Spec.Components))
	dupes := 0
	for _, name := range m.Spec.Components {
		if err := ValidComponentName(name); err != nil {
			checks = append(checks, CrossCheck{Name: "component/" + name, Status: "error", Message: err.Error()})
			continue
		}
		if seen[name] {
			checks = append(checks, CrossCheck{Name: "component/" + name, Status: "error", Message: fmt.Sprintf("duplicate component %q", name)})
			dupes++
			continue
		}
		seen[name] = true
		if strings.Contains(name, "_") {
			// Only the first letter is capitalized: "date_picker" becomes
			// "Date_picker" in the generated class name.
			checks = append(checks, CrossCheck{Name: "component/" + name, Status: "warning", Message: fmt.Sprintf("multi-word name %q: only the first letter is capitalized in the class name", name)})
			continue
		}
		checks = append(checks, CrossCheck{Name: "component/" + name, Status: "pass", Message: "ok"})
	}

	if dupes == 0 {
		checks = append(checks, CrossCheck{Name: "uniqueness", Status: "pass", Message: fmt.Sprintf("%d unique component(s)", len(seen))})
	}

	return checks
}
