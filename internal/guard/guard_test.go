package guard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/prompt"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, fs afero.Fs) {
	t.Helper()
	require.NoError(t, fs.MkdirAll("MyApp/src", 0755))
	require.NoError(t, afero.WriteFile(fs, "MyApp/src/main.tsx", []byte("old"), 0644))
	require.NoError(t, afero.WriteFile(fs, "keep.txt", []byte("untouched"), 0644))
}

type scriptedChooser struct {
	answer string
	err    error
	asked  int
	// onAsk runs while the question is open.
	onAsk func()
}

func (s *scriptedChooser) Select(context.Context, string, []string, string) (string, error) {
	s.asked++
	if s.onAsk != nil {
		s.onAsk()
	}
	return s.answer, s.err
}

func TestCheckAbsentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	chooser := &scriptedChooser{}

	err := New(fs, chooser, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.NoError(t, err)
	assert.Zero(t, chooser.asked, "no question when nothing collides")
}

func TestCheckCancel(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedProject(t, fs)
	chooser := &scriptedChooser{answer: ChoiceCancel}

	err := New(fs, chooser, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.Error(t, err)
	assert.True(t, scaffolderrors.IsCancelled(err))

	exists, err := afero.Exists(fs, "MyApp/src/main.tsx")
	require.NoError(t, err)
	assert.True(t, exists, "cancel must not touch the filesystem")
}

func TestCheckRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedProject(t, fs)
	chooser := &scriptedChooser{answer: ChoiceRemove}

	err := New(fs, chooser, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.NoError(t, err)

	exists, err := afero.DirExists(fs, "MyApp")
	require.NoError(t, err)
	assert.False(t, exists)

	kept, err := afero.Exists(fs, "keep.txt")
	require.NoError(t, err)
	assert.True(t, kept)
}

func TestCheckPolicies(t *testing.T) {
	tests := []struct {
		name          string
		policy        Policy
		wantCancelled bool
		wantExists    bool
	}{
		{"cancel policy", PolicyCancel, true, true},
		{"remove policy", PolicyRemove, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			seedProject(t, fs)
			chooser := &scriptedChooser{}

			err := New(fs, chooser, tt.policy, nil).Check(context.Background(), "MyApp")
			assert.Equal(t, tt.wantCancelled, scaffolderrors.IsCancelled(err))
			assert.Zero(t, chooser.asked)

			exists, _ := afero.DirExists(fs, "MyApp")
			assert.Equal(t, tt.wantExists, exists)
		})
	}
}

func TestCheckPromptFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedProject(t, fs)
	chooser := &scriptedChooser{err: errors.New("stdin closed")}

	err := New(fs, chooser, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.Error(t, err)
	assert.False(t, scaffolderrors.IsCancelled(err))
	assert.ErrorContains(t, err, "stdin closed")
}

func TestCheckWithPrompter(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedProject(t, fs)

	var out bytes.Buffer
	p := prompt.New(strings.NewReader("2\n"), &out)

	err := New(fs, p, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.NoError(t, err)
	assert.Contains(t, out.String(), `Target directory "MyApp" is not empty`)

	exists, _ := afero.DirExists(fs, "MyApp")
	assert.False(t, exists)
}

func TestCheckReadOnlyFilesystem(t *testing.T) {
	base := afero.NewMemMapFs()
	seedProject(t, base)
	fs := afero.NewReadOnlyFs(base)

	err := New(fs, &scriptedChooser{answer: ChoiceRemove}, PolicyAsk, nil).Check(context.Background(), "MyApp")
	require.Error(t, err)

	var se *scaffolderrors.ScaffoldError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, scaffolderrors.ErrorTypeIO, se.Type)
	assert.Equal(t, "MyApp", se.Path)
}

func TestCheckAfterInterrupt(t *testing.T) {
	for _, policy := range []Policy{PolicyAsk, PolicyRemove} {
		fs := afero.NewMemMapFs()
		seedProject(t, fs)
		chooser := &scriptedChooser{answer: ChoiceRemove}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := New(fs, chooser, policy, nil).Check(ctx, "MyApp")
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, scaffolderrors.IsCancelled(err))
		assert.Zero(t, chooser.asked)

		exists, _ := afero.Exists(fs, "MyApp/src/main.tsx")
		assert.True(t, exists, "an interrupted run must not remove anything")
	}
}

func TestCheckInterruptedWhileAsking(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedProject(t, fs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	chooser := &scriptedChooser{answer: ChoiceRemove, onAsk: cancel}

	err := New(fs, chooser, PolicyAsk, nil).Check(ctx, "MyApp")
	require.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "MyApp/src/main.tsx")
	assert.True(t, exists)
}
