package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/conneroisu/vitewind/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect vitewind configuration",
	Long: `Inspect the configuration vitewind resolves from .vitewind.yml,
VITEWIND_* environment variables and defaults.

Examples:
  vitewind config show                       # Show the effective configuration
  vitewind config show -o json               # Show it as JSON
  vitewind config validate                   # Validate .vitewind.yml
  vitewind config validate --file ci.yml     # Validate a specific file`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a vitewind configuration file.

This checks that tool names are on the allowlist (npm, npx, git), that the
create-vite version tag is well formed, and that the exit code and log
settings are in range. Warnings flag combinations that work but are
probably unintended.`,
	RunE: runConfigValidate,
}

var (
	configShowFormat = newFormatValue("yaml", "yaml", "json")
	configFile       string
	configStrict     bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	addFormatFlag(configShowCmd, configShowFormat)

	configValidateCmd.Flags().StringVar(&configFile, "file", "", "Configuration file to validate (default: .vitewind.yml)")
	configValidateCmd.Flags().BoolVar(&configStrict, "strict", false, "Treat warnings as errors")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg, configShowFormat.String())
}

func writeConfig(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(cfg)
	default:
		return fmt.Errorf("unsupported format: %s (supported: yaml, json)", format)
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	targetFile := configFile
	if targetFile == "" {
		targetFile = ".vitewind.yml"
	}
	if _, err := os.Stat(targetFile); err != nil {
		if os.IsNotExist(err) && configFile == "" {
			return errors.New("no configuration file found. Use --file to specify one")
		}
		return fmt.Errorf("configuration file %s: %w", targetFile, err)
	}

	fmt.Fprintf(out, "Validating configuration file: %s\n", targetFile)

	v := viper.New()
	v.SetConfigFile(targetFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	cfg := config.Default()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	validation := config.ValidateConfigWithDetails(cfg)
	if validation.Valid && !validation.HasWarnings() {
		fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	fmt.Fprint(out, validation.String())

	if validation.HasErrors() {
		return fmt.Errorf("configuration validation failed with %d errors", len(validation.Errors))
	}

	if configStrict {
		return fmt.Errorf("configuration validation failed in strict mode with %d warnings", len(validation.Warnings))
	}

	fmt.Fprintf(out, "Configuration is valid with %d warnings. Use --strict to treat warnings as errors.\n",
		len(validation.Warnings))
	return nil
}
