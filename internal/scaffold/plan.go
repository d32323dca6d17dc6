// Package scaffold drives a single project generation run: the prompts, the
// directory collision check, the tool invocations and the template writes.
package scaffold

import (
	"github.com/conneroisu/vitewind/internal/config"
	"github.com/conneroisu/vitewind/internal/runner"
)

// Step is one subprocess of the run together with the state it belongs to.
type Step struct {
	State   State
	Command runner.Command
}

// ViteTemplate returns the create-vite template for the session's language.
func ViteTemplate(s config.Session) string {
	if s.TypeScript() {
		return "react-ts"
	}
	return "react"
}

// Plan returns the subprocesses for a session in execution order. The
// result depends only on its arguments.
func Plan(s config.Session, tools config.ToolsConfig, commitMessage string) []Step {
	dir := s.ProjectDir()

	steps := []Step{
		{
			State: StateScaffolding,
			Command: runner.Command{
				Name:    tools.PackageManager,
				Args:    []string{"create", "vite@" + tools.ViteVersion, s.Name, "--", "--template", ViteTemplate(s)},
				Message: "Creating project",
			},
		},
		{
			State: StateInstalling,
			Command: runner.Command{
				Name:    tools.PackageManager,
				Args:    []string{"install"},
				Dir:     dir,
				Message: "Installing dependencies",
			},
		},
		{
			State: StateInstalling,
			Command: runner.Command{
				Name:    tools.PackageManager,
				Args:    []string{"install", "-D", "tailwindcss", "postcss", "autoprefixer"},
				Dir:     dir,
				Message: "Installing Tailwind",
			},
		},
		{
			State: StateStylingInit,
			Command: runner.Command{
				Name:    tools.PackageRunner,
				Args:    []string{"tailwindcss", "init", "-p"},
				Dir:     dir,
				Message: "Initializing Tailwind",
			},
		},
	}

	if !s.VCSInit {
		return steps
	}

	return append(steps,
		Step{
			State:   StateVCSInit,
			Command: runner.Command{Name: tools.VCS, Args: []string{"init"}, Dir: dir, Message: "Initializing Git Repo"},
		},
		Step{
			State:   StateVCSInit,
			Command: runner.Command{Name: tools.VCS, Args: []string{"add", "."}, Dir: dir, Message: "Staging"},
		},
		Step{
			State:   StateVCSInit,
			Command: runner.Command{Name: tools.VCS, Args: []string{"commit", "-m", commitMessage}, Dir: dir, Message: "Committing"},
		},
	)
}
