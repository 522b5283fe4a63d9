package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Required returns a validator that rejects empty or whitespace-only input.
// promptui re-prompts until the validator passes, so a required field can
// never come back blank.
func Required(field string) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// PromptRequired asks for input and re-prompts until it is non-empty.
func PromptRequired(label, field string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: Required(field),
	}

	return prompt.Run()
}

// PromptOptional asks for input that may be left empty.
func PromptOptional(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}

	return prompt.Run()
}
