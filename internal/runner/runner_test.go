package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based runner tests need a POSIX sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{
			name:     "plain arguments",
			cmd:      Command{Name: "npm", Args: []string{"install", "-D", "tailwindcss"}},
			expected: "npm install -D tailwindcss",
		},
		{
			name:     "argument with a space is quoted",
			cmd:      Command{Name: "git", Args: []string{"commit", "-m", "First commit"}},
			expected: `git commit -m "First commit"`,
		},
		{
			name:     "empty argument",
			cmd:      Command{Name: "git", Args: []string{"commit", "-m", ""}},
			expected: `git commit -m ""`,
		},
		{
			name:     "no arguments",
			cmd:      Command{Name: "npm"},
			expected: "npm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.String())
		})
	}
}

func TestCommandWorkDir(t *testing.T) {
	assert.Equal(t, ".", Command{}.WorkDir())
	assert.Equal(t, "MyApp", Command{Dir: "MyApp"}.WorkDir())
}

func TestExecRunnerSuccess(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	r := NewExecRunner(map[string]bool{"sh": true}, WithOutput(&out))

	res, err := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "echo first; echo second"},
		Message: "Printing lines",
	})
	require.NoError(t, err)

	assert.Equal(t, "first\nsecond\n", res.Stdout)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Printing lines")
	assert.Equal(t, "first", lines[1])
	assert.Equal(t, "second", lines[2])
	assert.Contains(t, lines[3], "Printing lines")
	assert.Contains(t, lines[3], "✔")
}

func TestExecRunnerUsesWorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644))

	r := NewExecRunner(map[string]bool{"sh": true}, WithOutput(&bytes.Buffer{}))
	res, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "ls"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "marker.txt")
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	r := NewExecRunner(map[string]bool{"sh": true}, WithOutput(&out))

	_, err := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "echo broken >&2; exit 3"},
		Message: "Failing step",
	})
	require.Error(t, err)

	assert.True(t, scaffolderrors.IsCommandError(err))
	assert.Equal(t, 3, scaffolderrors.ExitCodeOf(err, 0))

	var se *scaffolderrors.ScaffoldError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "broken", se.Context["stderr"])
	assert.Contains(t, out.String(), "✖")
	assert.Contains(t, out.String(), "broken")
}

func TestExecRunnerSpawnFailure(t *testing.T) {
	r := NewExecRunner(map[string]bool{"vitewind-no-such-binary": true}, WithOutput(&bytes.Buffer{}))

	_, err := r.Run(context.Background(), Command{Name: "vitewind-no-such-binary"})
	require.Error(t, err)
	assert.True(t, scaffolderrors.IsCommandError(err))
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Equal(t, 1, scaffolderrors.ExitCodeOf(err, 0))
}

func TestExecRunnerRejectsUnlistedBinary(t *testing.T) {
	var out bytes.Buffer
	r := NewExecRunner(map[string]bool{"npm": true}, WithOutput(&out))

	_, err := r.Run(context.Background(), Command{Name: "rm", Args: []string{"-rf", "/"}})
	require.Error(t, err)
	assert.False(t, scaffolderrors.IsCommandError(err))
	assert.Contains(t, err.Error(), "refusing to run rm -rf /")
	assert.Empty(t, out.String(), "nothing is announced for a rejected command")
}

func TestExecRunnerHonoursContext(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := NewExecRunner(map[string]bool{"sh": true}, WithOutput(&bytes.Buffer{}))
	_, err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "exec sleep 5"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatusLine(t *testing.T) {
	var out bytes.Buffer
	s := NewStatusLine(&out, "Installing dependencies")
	s.Success()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Installing dependencies")
	assert.Contains(t, lines[1], "✔")
}
