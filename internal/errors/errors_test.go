package errors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldErrorError(t *testing.T) {
	err := NewCommandError("npm install", 2, fmt.Errorf("exit status 2"))

	msg := err.Error()
	assert.Contains(t, msg, "[ERR_COMMAND_FAILED]")
	assert.Contains(t, msg, `"npm install"`)
	assert.Contains(t, msg, "exit status 2")
	assert.Equal(t, 2, err.ExitCode)
}

func TestNewCommandErrorExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		exitCode int
		expected int
	}{
		{"non-zero exit", 3, 3},
		{"spawn failure", -1, 1},
		{"zero is never reported", 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewCommandError("git init", tc.exitCode, nil)
			assert.Equal(t, tc.expected, err.ExitCode)
		})
	}
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(ErrCancelled))
	assert.True(t, IsCancelled(fmt.Errorf("guard: %w", ErrCancelled)))
	assert.False(t, IsCancelled(NewCommandError("npm install", 1, nil)))
	assert.False(t, IsCancelled(errors.New("plain")))
	assert.False(t, IsCancelled(nil))
}

func TestIsCommandError(t *testing.T) {
	assert.True(t, IsCommandError(NewCommandError("npm install", 1, nil)))
	assert.False(t, IsCommandError(NewIOError(ErrCodeWriteFailed, "write", nil)))
}

func TestExitCodeOf(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		cancelCode int
		expected   int
	}{
		{"nil", nil, 0, 0},
		{"cancelled default", ErrCancelled, 0, 0},
		{"cancelled custom", fmt.Errorf("wrapped: %w", ErrCancelled), 130, 130},
		{"command", NewCommandError("npm install", 7, nil), 0, 7},
		{"io", NewIOError(ErrCodeWriteFailed, "write failed", nil), 0, 1},
		{"plain", errors.New("boom"), 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCodeOf(tc.err, tc.cancelCode))
		})
	}
}

func TestScaffoldErrorIs(t *testing.T) {
	a := NewIOError(ErrCodeWriteFailed, "first", nil)
	b := NewIOError(ErrCodeWriteFailed, "second", nil)
	c := NewIOError(ErrCodeRemoveFailed, "third", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestWrapPreservesCommandDetails(t *testing.T) {
	inner := NewCommandError("npx tailwindcss init -p", 4, errors.New("exit status 4"))

	wrapped := Wrap(inner, ErrorTypeInternal, ErrCodeInternalError, "styling init")
	require.NotNil(t, wrapped)
	assert.Equal(t, 4, wrapped.ExitCode)
	assert.Equal(t, "npx tailwindcss init -p", wrapped.Command)
	assert.True(t, IsCommandError(wrapped.Cause))

	assert.Nil(t, Wrap(nil, ErrorTypeIO, ErrCodeWriteFailed, "noop"))
}

func TestWrapIO(t *testing.T) {
	err := WrapIO(errors.New("permission denied"), ErrCodeWriteFailed, "failed to write file", "app/src/App.tsx")
	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeIO, err.Type)
	assert.Equal(t, "app/src/App.tsx", err.Path)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestGetErrorContext(t *testing.T) {
	err := NewIOError(ErrCodeWriteFailed, "write", nil).
		WithPath("app/.gitignore").
		WithContext("step", "templates")

	ctx := GetErrorContext(fmt.Errorf("outer: %w", err))
	assert.Equal(t, "io", ctx["type"])
	assert.Equal(t, ErrCodeWriteFailed, ctx["code"])
	assert.Equal(t, "app/.gitignore", ctx["path"])
	assert.Equal(t, "templates", ctx["step"])

	assert.Nil(t, GetErrorContext(errors.New("plain")))
}

func TestSuggestFor(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		err := NewCommandError("npm install", -1, exec.ErrNotFound)
		suggestions := SuggestFor(err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "vitewind doctor", suggestions[0].Command)
	})

	t.Run("git commit", func(t *testing.T) {
		err := NewCommandError(`git commit -m "First commit"`, 128, nil)
		suggestions := SuggestFor(err)
		require.NotEmpty(t, suggestions)
		assert.Contains(t, suggestions[0].Title, "git identity")
	})

	t.Run("cancellation has none", func(t *testing.T) {
		assert.Empty(t, SuggestFor(ErrCancelled))
	})
}

func TestFormatSuggestions(t *testing.T) {
	assert.Equal(t, "title", FormatSuggestions("title", nil))

	out := FormatSuggestions("npm install failed", []ErrorSuggestion{
		{Title: "Check network", Description: "Registry unreachable", Command: "npm ping"},
	})
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "1. Check network")
	assert.Contains(t, out, "Run: npm ping")
}

type recordingLogger struct {
	levels []string
}

func (r *recordingLogger) Error(_ context.Context, _ error, _ string, _ ...interface{}) {
	r.levels = append(r.levels, "error")
}

func (r *recordingLogger) Warn(_ context.Context, _ error, _ string, _ ...interface{}) {
	r.levels = append(r.levels, "warn")
}

func (r *recordingLogger) Info(_ context.Context, _ string, _ ...interface{}) {
	r.levels = append(r.levels, "info")
}

func TestErrorHandlerHandle(t *testing.T) {
	logger := &recordingLogger{}
	handler := NewErrorHandler(logger)
	ctx := context.Background()

	handler.Handle(ctx, nil)
	handler.Handle(ctx, ErrCancelled)
	handler.Handle(ctx, NewCommandError("npm install", 1, nil))
	handler.Handle(ctx, NewConfigError(ErrCodeConfigInvalid, "bad"))
	handler.Handle(ctx, errors.New("plain"))

	assert.Equal(t, []string{"info", "error", "warn", "error"}, logger.levels)
}
