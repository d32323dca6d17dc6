package runner

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	pendingMark = color.New(color.FgCyan).Sprint("•")
	successMark = color.New(color.FgGreen).Sprint("✔")
	failureMark = color.New(color.FgRed).Sprint("✖")
)

// StatusLine announces a step before it runs and marks how it ended.
type StatusLine struct {
	out     io.Writer
	message string
}

// NewStatusLine prints the pending line for message.
func NewStatusLine(out io.Writer, message string) *StatusLine {
	fmt.Fprintf(out, "%s %s\n", pendingMark, message)
	return &StatusLine{out: out, message: message}
}

// Success marks the step as succeeded.
func (s *StatusLine) Success() {
	fmt.Fprintf(s.out, "%s %s\n", successMark, s.message)
}

// Fail marks the step as failed.
func (s *StatusLine) Fail() {
	fmt.Fprintf(s.out, "%s %s\n", failureMark, s.message)
}
