// Package report prints the header shown before the first question and the
// banner shown once a project has been generated.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/conneroisu/vitewind/internal/config"
	"github.com/fatih/color"
)

const boxPadding = 2

// Reporter writes the completion banner and next steps.
type Reporter struct {
	out            io.Writer
	packageManager string
}

// New creates a Reporter. An empty packageManager falls back to npm.
func New(out io.Writer, packageManager string) *Reporter {
	if packageManager == "" {
		packageManager = config.DefaultPackageManager
	}
	return &Reporter{out: out, packageManager: packageManager}
}

// Intro prints the header shown before the first question.
func (r *Reporter) Intro() {
	color.New(color.FgCyan).Fprintln(r.out, "Create React App with Vite and Tailwind")
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "  %s\n", color.New(color.BgBlue).Sprint("INFO:"))
	fmt.Fprintln(r.out, "  This tool uses Vite, Tailwind and Git cli tools")
	fmt.Fprintln(r.out)
}

// NextSteps returns the commands the user runs to start the dev server.
// They can be pasted into a shell as printed.
func (r *Reporter) NextSteps(s config.Session) []string {
	return []string{
		"cd " + shellWord(s.ProjectDir()),
		r.packageManager + " run dev",
	}
}

// shellSpecial are the characters a POSIX shell would interpret in a bare word.
const shellSpecial = "'\"\\$`&;|<>()*?[]#~!{}"

// shellWord single-quotes dir when a shell would not read it as one literal word.
func shellWord(dir string) string {
	if dir != "" && strings.IndexFunc(dir, unicode.IsSpace) < 0 && !strings.ContainsAny(dir, shellSpecial) {
		return dir
	}
	return "'" + strings.ReplaceAll(dir, "'", `'\''`) + "'"
}

// Report prints the boxed "<name> created" banner followed by the next steps.
func (r *Reporter) Report(s config.Session) {
	title := s.Name + " created"
	width := utf8.RuneCountInString(title) + 2*boxPadding
	pad := strings.Repeat(" ", boxPadding)
	edge := strings.Repeat("─", width)

	frame := color.New(color.FgCyan)
	heading := color.New(color.FgGreen, color.Bold)

	fmt.Fprintln(r.out)
	frame.Fprintln(r.out, "┌"+edge+"┐")
	frame.Fprint(r.out, "│")
	fmt.Fprint(r.out, pad)
	heading.Fprint(r.out, title)
	fmt.Fprint(r.out, pad)
	frame.Fprintln(r.out, "│")
	frame.Fprintln(r.out, "└"+edge+"┘")

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Next steps:")
	for _, step := range r.NextSteps(s) {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.Bold).Sprint(step))
	}
}
