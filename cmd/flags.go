package cmd

import (
	"fmt"
	"strings"

	"github.com/conneroisu/vitewind/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*languageValue)(nil)
var _ pflag.Value = (*formatValue)(nil)

// languageValue is the --lang flag. The zero value means "ask".
type languageValue struct {
	lang config.Language
}

func (v *languageValue) String() string { return string(v.lang) }

func (v *languageValue) Set(s string) error {
	lang, err := config.ParseLanguage(s)
	if err != nil {
		return err
	}
	v.lang = lang
	return nil
}

func (v *languageValue) Type() string { return "ts|js" }

// Language returns the chosen language, or "" when the flag was not given.
func (v *languageValue) Language() config.Language { return v.lang }

// formatValue restricts an output flag to a fixed set of formats.
type formatValue struct {
	value   string
	allowed []string
}

func newFormatValue(def string, allowed ...string) *formatValue {
	return &formatValue{value: def, allowed: allowed}
}

func (v *formatValue) String() string { return v.value }

func (v *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		s = "yaml"
	}
	for _, a := range v.allowed {
		if s == a {
			v.value = s
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q, must be one of: %s", s, strings.Join(v.allowed, ", "))
}

func (v *formatValue) Type() string { return strings.Join(v.allowed, "|") }

// addFormatFlag registers --format/-o on cmd.
func addFormatFlag(cmd *cobra.Command, v *formatValue) {
	cmd.Flags().VarP(v, "format", "o", "Output format ("+v.Type()+")")
}
