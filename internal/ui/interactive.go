package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptTitle asks for the title of a new ADR.
func PromptTitle() (string, error) {
	var title string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ADR title").
				Placeholder("Use event sourcing for orders").
				Value(&title).
				Validate(ValidateTitle),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return title, nil
}

// ValidateTitle rejects blank titles.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}
