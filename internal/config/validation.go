package config

import (
	"fmt"
	"strings"

	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/conneroisu/vitewind/internal/validation"
)

// AllowedTools lists the binaries the scaffolder may invoke.
var AllowedTools = map[string]bool{
	"npm": true,
	"npx": true,
	"git": true,
}

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// ValidateConfigWithDetails performs comprehensive validation with detailed feedback
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateToolsDetails(&config.Tools, result)

	if config.CancelExitCode < 0 || config.CancelExitCode > 255 {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "cancel_exit_code",
			Value:       config.CancelExitCode,
			Message:     "exit code must be between 0 and 255",
			Suggestions: []string{"Use 0 to treat cancellation as success, or a code such as 130"},
		})
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log.level",
			Value:   config.Log.Level,
			Message: err.Error(),
		})
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "log.format",
			Value:       config.Log.Format,
			Message:     "log format must be text or json",
			Suggestions: []string{"Set log.format: text"},
		})
	}

	if strings.ContainsAny(config.Git.CommitMessage, "\r\n") {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "git.commit_message",
			Value:   config.Git.CommitMessage,
			Message: "multi-line commit message; only the subject is shown by most tools",
		})
	}

	if config.Pipeline.VCSInit && !config.Pipeline.RichTemplates {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "pipeline.rich_templates",
			Value:       false,
			Message:     "the repository will be committed with the build tool's default .gitignore",
			Suggestions: []string{"Enable pipeline.rich_templates to write the extended ignore rules"},
		})
	}

	result.Valid = !result.HasErrors()

	return result
}

func validateToolsDetails(tools *ToolsConfig, result *ValidationResult) {
	checks := []struct {
		field string
		value string
	}{
		{"tools.package_manager", tools.PackageManager},
		{"tools.package_runner", tools.PackageRunner},
		{"tools.vcs", tools.VCS},
	}

	for _, check := range checks {
		if err := validation.ValidateCommand(check.value, AllowedTools); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:       check.field,
				Value:       check.value,
				Message:     err.Error(),
				Suggestions: []string{"Allowed tools: npm, npx, git (optionally as an absolute path)"},
			})
		}
	}

	if err := validation.ValidateVersionTag(tools.ViteVersion); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "tools.vite_version",
			Value:       tools.ViteVersion,
			Message:     err.Error(),
			Suggestions: []string{"Use an npm dist-tag such as latest, or a version like 5.4.1"},
		})
	}
}

// validateConfig returns the first validation error, if any.
func validateConfig(config *Config) error {
	result := ValidateConfigWithDetails(config)
	if !result.HasErrors() {
		return nil
	}

	first := result.Errors[0]
	return &first
}
