package templates

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/conneroisu/vitewind/internal/config"
	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(lang config.Language, rich bool) config.Session {
	return config.Session{Name: "MyApp", Language: lang, VCSInit: true, RichTemplates: rich}
}

func paths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestFiles(t *testing.T) {
	tests := []struct {
		name     string
		session  config.Session
		expected []string
	}{
		{
			name:    "typescript rich",
			session: session(config.LanguageTypeScript, true),
			expected: []string{
				"tailwind.config.js", "src/index.css", "src/App.tsx",
				"tsconfig.json", "tsconfig.node.json", ".gitignore", "src/App.css",
			},
		},
		{
			name:    "javascript rich",
			session: session(config.LanguageJavaScript, true),
			expected: []string{
				"tailwind.config.js", "src/index.css", "src/App.jsx",
				".gitignore", "src/App.css",
			},
		},
		{
			name:     "typescript minimal",
			session:  session(config.LanguageTypeScript, false),
			expected: []string{"tailwind.config.js", "src/index.css", "src/App.tsx"},
		},
		{
			name:     "javascript minimal",
			session:  session(config.LanguageJavaScript, false),
			expected: []string{"tailwind.config.js", "src/index.css", "src/App.jsx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paths(Files(tt.session)))
		})
	}
}

func TestFilesOnlyRemovesAppCSS(t *testing.T) {
	for _, f := range Files(session(config.LanguageTypeScript, true)) {
		if f.Remove {
			assert.Equal(t, "src/App.css", f.Path)
			assert.Empty(t, f.Content)
		} else {
			assert.NotEmpty(t, f.Content, f.Path)
		}
	}
}

func TestFilesIgnoresProjectName(t *testing.T) {
	a := session(config.LanguageTypeScript, true)
	b := a
	b.Name = "storefront"
	assert.Equal(t, Files(a), Files(b))
}

func TestTemplateContent(t *testing.T) {
	files := Files(session(config.LanguageTypeScript, true))
	byPath := make(map[string]string, len(files))
	for _, f := range files {
		byPath[f.Path] = f.Content
	}

	assert.Equal(t, "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n", byPath["src/index.css"])
	assert.Contains(t, byPath["tailwind.config.js"], `"./src/**/*.{js,ts,jsx,tsx}"`)
	assert.Contains(t, byPath["src/App.tsx"], "export default function App()")
	assert.Contains(t, byPath["tsconfig.json"], `"path": "./tsconfig.node.json"`)
	assert.Contains(t, byPath["tsconfig.node.json"], `"vite.config.ts"`)
	assert.Contains(t, byPath[".gitignore"], "node_modules/")
}

func TestGitignoreByLanguage(t *testing.T) {
	ts := Gitignore(session(config.LanguageTypeScript, true))
	js := Gitignore(session(config.LanguageJavaScript, true))

	assert.Contains(t, ts, "*.js\n")
	assert.Contains(t, ts, "*.tsbuildinfo")
	assert.NotContains(t, js, "*.js\n")
	assert.NotContains(t, js, "*.tsbuildinfo")
	assert.Contains(t, js, "node_modules/")
}

func TestWriterWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "MyApp/src/App.css", []byte("#root {}"), 0644))
	require.NoError(t, afero.WriteFile(fs, "MyApp/src/index.css", []byte(":root { color: red; }\nbody { margin: 0; }\n"), 0644))

	w := NewWriter(fs, nil)
	files := Files(session(config.LanguageTypeScript, true))
	require.NoError(t, w.Write(context.Background(), "MyApp", files))

	for _, f := range files {
		target := filepath.Join("MyApp", filepath.FromSlash(f.Path))
		exists, err := afero.Exists(fs, target)
		require.NoError(t, err)

		if f.Remove {
			assert.False(t, exists, target)
			continue
		}
		require.True(t, exists, target)
		data, err := afero.ReadFile(fs, target)
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(data), "existing content is replaced, not appended")
	}
}

func TestWriterIsRepeatable(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, nil)
	files := Files(session(config.LanguageJavaScript, true))

	require.NoError(t, w.Write(context.Background(), "MyApp", files))
	first, err := afero.ReadFile(fs, "MyApp/src/App.jsx")
	require.NoError(t, err)

	require.NoError(t, w.Write(context.Background(), "MyApp", files))
	second, err := afero.ReadFile(fs, "MyApp/src/App.jsx")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriterMissingRemoveTargetIsIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, nil)

	err := w.Write(context.Background(), "MyApp", []File{{Path: "src/App.css", Remove: true}})
	assert.NoError(t, err)
}

func TestWriterReportsFailingPath(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(fs, nil)

	err := w.Write(context.Background(), "MyApp", []File{{Path: "tailwind.config.js", Content: "x"}})
	require.Error(t, err)

	var se *scaffolderrors.ScaffoldError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, scaffolderrors.ErrorTypeIO, se.Type)
	assert.Equal(t, scaffolderrors.ErrCodeWriteFailed, se.Code)
	assert.Contains(t, se.Path, "MyApp")
	assert.Equal(t, 1, scaffolderrors.ExitCodeOf(err, 0))
}

func TestWriterStopsOnCancelledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Write(ctx, "MyApp", Files(session(config.LanguageTypeScript, false)))
	assert.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "MyApp/tailwind.config.js")
	assert.False(t, exists)
}
