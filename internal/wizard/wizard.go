// Package wizard implements the interactive prompts used by manifest-editing
// commands. The Prompter interface keeps the survey dependency out of tests.
package wizard

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/deepyr/pagegen/internal/config"
)

// ErrCancelled is returned when the user aborts the wizard with Ctrl+C.
var ErrCancelled = terminal.InterruptErr

// ValidateComponentName adapts the manifest name check to a survey validator.
func ValidateComponentName(value interface{}) error {
	return config.ValidComponentName(strings.TrimSpace(fmt.Sprintf("%v", value)))
}

// Prompter abstracts user interaction for testing.
type Prompter interface {
	Input(label, defaultValue string, validator survey.Validator) (string, error)
	Confirm(label string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter with survey/v2.
type SurveyPrompter struct{}

// NewSurveyPrompter returns a survey-based prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) Input(label, defaultValue string, validator survey.Validator) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{
		Message: label,
		Default: defaultValue,
	}, &value, survey.WithValidator(validator))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *SurveyPrompter) Confirm(label string, defaultValue bool) (bool, error) {
	var value bool
	err := survey.AskOne(&survey.Confirm{
		Message: label,
		Default: defaultValue,
	}, &value)
	return value, err
}
