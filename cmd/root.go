package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd generates a project when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "vitewind [name]",
	Short: "Scaffold a Vite + React project with Tailwind CSS",
	Long: `vitewind generates a Vite + React project preconfigured with Tailwind CSS.

It asks for a project name and whether to use TypeScript, then runs
create-vite, installs dependencies and Tailwind, writes the Tailwind
configuration and a sample component, and makes the first git commit.

Quick Start:
  vitewind                        Answer the questions interactively
  vitewind shop --lang js         Pre-answer the questions
  vitewind --yes                  Accept every default
  vitewind doctor                 Check that npm, npx and git are available

Configuration:
  .vitewind.yml in the working directory, VITEWIND_* environment variables,
  or --config <file>.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runCreate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Cancelling ctx kills any running tool.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .vitewind.yml, can also use VITEWIND_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	addCreateFlags(rootCmd, &createOpts)
}

// initConfig selects the config file and enables VITEWIND_ environment
// overrides. A missing file is not an error; a malformed one is reported
// when the configuration is loaded.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("VITEWIND_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vitewind")
	}

	viper.SetEnvPrefix("VITEWIND")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && viper.ConfigFileUsed() != "" {
		fmt.Fprintln(os.Stderr, "Ignoring config file:", err)
	}
}
