package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
}

// SuggestFor returns hints for the common ways a scaffolding run fails.
func SuggestFor(err error) []ErrorSuggestion {
	var se *ScaffoldError
	if !errors.As(err, &se) {
		return nil
	}

	switch se.Type {
	case ErrorTypeCommand:
		return commandSuggestions(se)
	case ErrorTypeIO:
		return []ErrorSuggestion{{
			Title:       "Check directory permissions",
			Description: fmt.Sprintf("Could not modify %s. Make sure the project directory is writable.", se.Path),
		}}
	case ErrorTypeConfig:
		return []ErrorSuggestion{{
			Title:   "Inspect the effective configuration",
			Command: "vitewind config show",
		}}
	}

	return nil
}

func commandSuggestions(se *ScaffoldError) []ErrorSuggestion {
	if errors.Is(se.Cause, exec.ErrNotFound) {
		return []ErrorSuggestion{{
			Title:       "Install the missing tool",
			Description: "The command could not be found on PATH. Node.js (npm, npx) and git are required.",
			Command:     "vitewind doctor",
		}}
	}

	var suggestions []ErrorSuggestion
	switch {
	case strings.HasPrefix(se.Command, "git commit"):
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Configure a git identity",
			Description: "git refuses to commit without user.name and user.email.",
			Command:     `git config --global user.email "you@example.com"`,
		})
	case strings.HasPrefix(se.Command, "git"):
		suggestions = append(suggestions, ErrorSuggestion{
			Title:   "Skip repository initialization",
			Command: "vitewind --no-git",
		})
	case strings.Contains(se.Command, "install"):
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Check network access to the npm registry",
			Description: "Dependency installation needs to reach registry.npmjs.org.",
			Command:     "npm ping",
		})
	}

	return suggestions
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
	}

	return output.String()
}
