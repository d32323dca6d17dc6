// Package config provides configuration management for vitewind using Viper
// for loading from a .vitewind.yml file, VITEWIND_ environment variables and
// command-line flags.
//
// The configuration only seeds a run: prompt defaults, which optional
// pipeline stages run, and which tool binaries are invoked. The answers the
// user gives are captured separately in a Session.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultProjectName    = "MyApp"
	DefaultPackageManager = "npm"
	DefaultPackageRunner  = "npx"
	DefaultVCS            = "git"
	DefaultViteVersion    = "latest"
	DefaultCommitMessage  = "First commit"
)

type Config struct {
	Defaults       DefaultsConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`
	Pipeline       PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`
	Tools          ToolsConfig    `mapstructure:"tools" yaml:"tools" json:"tools"`
	Git            GitConfig      `mapstructure:"git" yaml:"git" json:"git"`
	Log            LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
	CancelExitCode int            `mapstructure:"cancel_exit_code" yaml:"cancel_exit_code" json:"cancel_exit_code"`
}

type DefaultsConfig struct {
	Name       string `mapstructure:"name" yaml:"name" json:"name"`
	TypeScript bool   `mapstructure:"typescript" yaml:"typescript" json:"typescript"`
}

type PipelineConfig struct {
	VCSInit       bool `mapstructure:"vcs_init" yaml:"vcs_init" json:"vcs_init"`
	RichTemplates bool `mapstructure:"rich_templates" yaml:"rich_templates" json:"rich_templates"`
}

type ToolsConfig struct {
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager" json:"package_manager"`
	PackageRunner  string `mapstructure:"package_runner" yaml:"package_runner" json:"package_runner"`
	VCS            string `mapstructure:"vcs" yaml:"vcs" json:"vcs"`
	ViteVersion    string `mapstructure:"vite_version" yaml:"vite_version" json:"vite_version"`
}

type GitConfig struct {
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message" json:"commit_message"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Name:       DefaultProjectName,
			TypeScript: true,
		},
		Pipeline: PipelineConfig{
			VCSInit:       true,
			RichTemplates: true,
		},
		Tools: ToolsConfig{
			PackageManager: DefaultPackageManager,
			PackageRunner:  DefaultPackageRunner,
			VCS:            DefaultVCS,
			ViteVersion:    DefaultViteVersion,
		},
		Git: GitConfig{
			CommitMessage: DefaultCommitMessage,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with viper so that VITEWIND_ environment
// variables are picked up even when no config file exists.
func SetDefaults() {
	d := Default()
	viper.SetDefault("defaults.name", d.Defaults.Name)
	viper.SetDefault("defaults.typescript", d.Defaults.TypeScript)
	viper.SetDefault("pipeline.vcs_init", d.Pipeline.VCSInit)
	viper.SetDefault("pipeline.rich_templates", d.Pipeline.RichTemplates)
	viper.SetDefault("tools.package_manager", d.Tools.PackageManager)
	viper.SetDefault("tools.package_runner", d.Tools.PackageRunner)
	viper.SetDefault("tools.vcs", d.Tools.VCS)
	viper.SetDefault("tools.vite_version", d.Tools.ViteVersion)
	viper.SetDefault("git.commit_message", d.Git.CommitMessage)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
	viper.SetDefault("cancel_exit_code", d.CancelExitCode)
}

// Load reads the configuration from viper, applies defaults for unset keys
// and validates the result.
func Load() (*Config, error) {
	SetDefaults()

	config := Default()
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	// An explicit empty string in the file falls back to the default
	if config.Defaults.Name == "" {
		config.Defaults.Name = DefaultProjectName
	}
	if config.Tools.PackageManager == "" {
		config.Tools.PackageManager = DefaultPackageManager
	}
	if config.Tools.PackageRunner == "" {
		config.Tools.PackageRunner = DefaultPackageRunner
	}
	if config.Tools.VCS == "" {
		config.Tools.VCS = DefaultVCS
	}
	if config.Tools.ViteVersion == "" {
		config.Tools.ViteVersion = DefaultViteVersion
	}
	if config.Git.CommitMessage == "" {
		config.Git.CommitMessage = DefaultCommitMessage
	}

	// log-level is also a persistent flag bound at the root
	if viper.IsSet("log-level") {
		config.Log.Level = viper.GetString("log-level")
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
