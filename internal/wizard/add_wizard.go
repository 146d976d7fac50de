package wizard

import (
	"fmt"
	"strings"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/generator"
)

// RunAddComponent collects a new component name interactively and appends it
// to the manifest. Returns the added name.
func RunAddComponent(p Prompter, m *config.Manifest) (string, error) {
	name, err := p.Input("Component name (lowercase, e.g. tooltip)", "", ValidateComponentName)
	if err != nil {
		return "", err
	}

	if strings.Contains(name, "_") {
		// Surface the capitalization quirk before committing the name.
		label := fmt.Sprintf("%q is multi-word; the generated class will be %sPage. Continue?", name, generator.PascalFirst(name))
		ok, confirmErr := p.Confirm(label, true)
		if confirmErr != nil {
			return "", confirmErr
		}
		if !ok {
			return "", ErrCancelled
		}
	}

	if err := config.AddComponent(m, name); err != nil {
		return "", err
	}
	return name, nil
}
