package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/conneroisu/vitewind/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for vitewind: version, git commit, build
time, Go version and target platform.

Examples:
  vitewind version               # Version and commit
  vitewind version --detailed    # All build information
  vitewind version -o json       # Output as JSON`,
	RunE: runVersionCommand,
}

var (
	versionFormat   = newFormatValue("text", "text", "json", "yaml")
	versionShort    bool
	versionDetailed bool
)

func init() {
	rootCmd.AddCommand(versionCmd)

	addFormatFlag(versionCmd, versionFormat)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	return writeVersion(cmd.OutOrStdout(), version.GetBuildInfo(), versionFormat.String())
}

func writeVersion(w io.Writer, info version.BuildInfo, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case "yaml":
		return yaml.NewEncoder(w).Encode(info)
	}

	switch {
	case versionShort:
		fmt.Fprintln(w, info.Short())
	case versionDetailed:
		fmt.Fprintln(w, info.Detailed())
		if info.IsRelease() {
			fmt.Fprintln(w, "Build type: release")
		} else {
			fmt.Fprintln(w, "Build type: development")
		}
	default:
		fmt.Fprintf(w, "vitewind %s\n", info.Short())
		fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
		fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	}
	return nil
}
