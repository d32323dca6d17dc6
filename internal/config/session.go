package config

import (
	"fmt"
	"strings"
)

// Language selects the flavour of the generated project.
type Language string

const (
	LanguageTypeScript Language = "ts"
	LanguageJavaScript Language = "js"
)

// ParseLanguage accepts "ts", "typescript", "js", "javascript" and the
// prompt answers "y"/"n".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript", "y", "yes":
		return LanguageTypeScript, nil
	case "js", "javascript", "n", "no":
		return LanguageJavaScript, nil
	default:
		return "", fmt.Errorf("unknown language %q (ts, js)", s)
	}
}

// LanguageFor maps the TypeScript yes/no answer to a Language.
func LanguageFor(typescript bool) Language {
	if typescript {
		return LanguageTypeScript
	}
	return LanguageJavaScript
}

// Session holds the answers for one run. It is built once, after the
// prompts, and passed by value to every later step.
type Session struct {
	Name          string
	Language      Language
	VCSInit       bool
	RichTemplates bool
}

// NewSession seeds a session from the loaded configuration. The prompts
// then overwrite Name and Language.
func NewSession(cfg *Config) Session {
	return Session{
		Name:          cfg.Defaults.Name,
		Language:      LanguageFor(cfg.Defaults.TypeScript),
		VCSInit:       cfg.Pipeline.VCSInit,
		RichTemplates: cfg.Pipeline.RichTemplates,
	}
}

// TypeScript reports whether the typed template variant was chosen.
func (s Session) TypeScript() bool {
	return s.Language == LanguageTypeScript
}

// ProjectDir is the directory the build-tool initializer creates, relative to
// the working directory.
func (s Session) ProjectDir() string {
	return s.Name
}
