package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptDescription prompts for a description text
func PromptDescription(message string, required bool) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if required {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
	}

	err := input.Run()
	return desc, err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return amount, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	matchFound := false

	for _, o := range options {
		if o == defaultOption {
			matchFound = true
			break
		}
	}
	if !matchFound && len(options) > 0 {
		selected = options[0]
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
