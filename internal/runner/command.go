// Package runner executes the external tools the scaffolder drives. Each
// invocation is run directly (never through a shell), announced on a status
// line, and reported back as a Result or a typed error.
package runner

import (
	"strconv"
	"strings"
)

// Command is one invocation of an external tool.
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Message string
}

// String renders the command the way a user would type it. Arguments with
// whitespace or quotes are double-quoted.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// WorkDir returns the working directory, defaulting to the current one.
func (c Command) WorkDir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"'") {
		return strconv.Quote(arg)
	}
	return arg
}
