// Package validation checks the values that end up on a subprocess command
// line. Commands are never passed through a shell, but tool names and version
// tags come from configuration and are still held to an allowlist.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var versionTagPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._~^-]*$`)

// ValidateArgument rejects shell metacharacters in a tool name or flag.
func ValidateArgument(arg string) error {
	dangerous := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}
	for _, char := range dangerous {
		if strings.Contains(arg, char) {
			return fmt.Errorf("contains dangerous character: %q", char)
		}
	}

	if strings.Contains(arg, "..") {
		return fmt.Errorf("contains path traversal: %s", arg)
	}

	return nil
}

// ValidateCommand validates a command name against an allowlist. The name is
// matched on its base name so that a configured absolute path such as
// /usr/local/bin/npm is accepted.
func ValidateCommand(command string, allowedCommands map[string]bool) error {
	if command == "" {
		return fmt.Errorf("command cannot be empty")
	}

	if err := ValidateArgument(command); err != nil {
		return fmt.Errorf("invalid command '%s': %w", command, err)
	}

	base := strings.TrimSuffix(filepath.Base(command), ".exe")
	base = strings.TrimSuffix(base, ".cmd")
	if !allowedCommands[base] {
		return fmt.Errorf("command '%s' is not allowed", command)
	}

	return nil
}

// ValidateVersionTag validates an npm dist-tag or semver range such as
// "latest", "5" or "^5.4.0".
func ValidateVersionTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("version tag cannot be empty")
	}
	if !versionTagPattern.MatchString(tag) {
		return fmt.Errorf("invalid version tag: %s", tag)
	}
	return nil
}
