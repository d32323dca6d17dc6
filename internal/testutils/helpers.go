package testutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/conneroisu/vitewind/internal/config"
	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/runner"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateTestConfig returns the default configuration with a project name.
func CreateTestConfig(name string) *config.Config {
	cfg := config.Default()
	cfg.Defaults.Name = name
	return cfg
}

// CreateExistingProject puts a stale project tree at dir on fs.
func CreateExistingProject(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()

	files := map[string]string{
		"package.json":   `{"name":"stale"}`,
		"src/main.tsx":   "// stale",
		"node_modules/x": "",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, path.Join(dir, name), []byte(content), 0644))
	}
}

// ScriptedInput joins prompt answers into line-separated input.
func ScriptedInput(answers ...string) io.Reader {
	if len(answers) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

// RecordingRunner records every command instead of running it. When an Fs
// is attached it mimics the files the real tools leave behind, so template
// writes can be checked against a realistic tree.
type RecordingRunner struct {
	mu       sync.Mutex
	commands []runner.Command
	failures map[string]int
	fs       afero.Fs
}

// NewRecordingRunner creates an empty RecordingRunner.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{failures: make(map[string]int)}
}

// WithFS makes the runner create tool output on fs.
func (r *RecordingRunner) WithFS(fs afero.Fs) *RecordingRunner {
	r.fs = fs
	return r
}

// FailOn makes the command whose text is exactly text exit with exitCode.
func (r *RecordingRunner) FailOn(text string, exitCode int) *RecordingRunner {
	r.failures[text] = exitCode
	return r
}

// Run records cmd and returns the configured outcome.
func (r *RecordingRunner) Run(ctx context.Context, cmd runner.Command) (runner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return runner.Result{}, err
	}

	r.commands = append(r.commands, cmd)
	text := cmd.String()

	if code, ok := r.failures[text]; ok {
		return runner.Result{Stderr: "simulated failure"},
			scaffolderrors.NewCommandError(text, code, fmt.Errorf("exit status %d", code))
	}

	if r.fs != nil {
		if err := r.simulate(cmd); err != nil {
			return runner.Result{}, err
		}
	}

	return runner.Result{}, nil
}

// Commands returns a copy of the recorded commands.
func (r *RecordingRunner) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.commands...)
}

// CommandLines returns the recorded commands as text.
func (r *RecordingRunner) CommandLines() []string {
	cmds := r.Commands()
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, c.String())
	}
	return lines
}

func (r *RecordingRunner) simulate(cmd runner.Command) error {
	args := cmd.Args
	switch {
	case len(args) >= 3 && args[0] == "create" && strings.HasPrefix(args[1], "vite@"):
		dir := args[2]
		app := "src/App.jsx"
		if args[len(args)-1] == "react-ts" {
			app = "src/App.tsx"
		}
		return writeAll(r.fs, dir, map[string]string{
			"package.json":  `{"name":"` + dir + `"}`,
			"index.html":    "<div id=\"root\"></div>",
			"src/App.css":   "#root {}",
			"src/index.css": ":root {}",
			app:             "export default function App() {}",
		})
	case len(args) >= 2 && args[0] == "tailwindcss" && args[1] == "init":
		return writeAll(r.fs, cmd.WorkDir(), map[string]string{
			"tailwind.config.js": "module.exports = {}",
			"postcss.config.js":  "module.exports = {}",
		})
	case len(args) >= 1 && args[0] == "init" && path.Base(cmd.Name) == "git":
		return r.fs.MkdirAll(path.Join(cmd.WorkDir(), ".git"), 0755)
	}
	return nil
}

func writeAll(fs afero.Fs, dir string, files map[string]string) error {
	for name, content := range files {
		if err := afero.WriteFile(fs, path.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SecurityTestCases provides common hostile inputs for command arguments.
var SecurityTestCases = struct {
	PathTraversal    []string
	CommandInjection []string
}{
	PathTraversal: []string{
		"../../../etc/passwd",
		"..\\..\\..\\windows\\system32",
		"/./../../etc/passwd",
	},
	CommandInjection: []string{
		"npm; rm -rf /",
		"npm && rm -rf /",
		"npm | rm -rf /",
		"npm`rm -rf /`",
		"npm$(rm -rf /)",
		"npm\nrm -rf /",
	},
}

// AssertFilePermissions checks the permission bits of a file on disk.
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0777),
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0777), expectedMode)
}
