// Package version reports how the vitewind binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time with -ldflags "-X github.com/conneroisu/vitewind/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const unknown = "unknown"

// BuildInfo contains version and build information.
type BuildInfo struct {
	Version   string    `json:"version" yaml:"version"`
	GitCommit string    `json:"git_commit" yaml:"git_commit"`
	BuildTime time.Time `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
	Dirty     bool      `json:"dirty" yaml:"dirty"`
}

// GetBuildInfo collects the linker-provided values, falling back to the
// VCS settings the Go toolchain embeds.
func GetBuildInfo() BuildInfo {
	settings := vcsSettings()

	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: parseTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Dirty:     settings["vcs.modified"] == "true",
	}

	if info.GitCommit == "" || info.GitCommit == unknown {
		if rev, ok := settings["vcs.revision"]; ok {
			info.GitCommit = rev
		} else {
			info.GitCommit = unknown
		}
	}

	if info.Version == "" || info.Version == "dev" {
		info.Version = "dev"
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.BuildTime.IsZero() {
		info.BuildTime = parseTime(settings["vcs.time"])
	}

	return info
}

// Short renders "<version> (<commit>)", or just the version when the commit
// is unknown.
func (b BuildInfo) Short() string {
	if b.GitCommit == unknown || len(b.GitCommit) < 7 {
		return b.Version
	}
	if b.Version == "dev" {
		return "dev-" + b.GitCommit[:7]
	}
	return fmt.Sprintf("%s (%s)", b.Version, b.GitCommit[:7])
}

// Detailed renders one "Key: value" line per known field.
func (b BuildInfo) Detailed() string {
	lines := []string{"Version: " + b.Version}
	if b.GitCommit != unknown {
		lines = append(lines, "Commit: "+b.GitCommit)
	}
	if !b.BuildTime.IsZero() {
		lines = append(lines, "Built: "+b.BuildTime.UTC().Format(time.RFC3339))
	}
	lines = append(lines, "Go: "+b.GoVersion, "Platform: "+b.Platform)
	if b.Dirty {
		lines = append(lines, "Working directory: dirty")
	}
	return strings.Join(lines, "\n")
}

// IsRelease reports whether the build carries a real version.
func (b BuildInfo) IsRelease() bool {
	return b.Version != "dev" && !strings.HasPrefix(b.Version, "dev-")
}

func vcsSettings() map[string]string {
	settings := make(map[string]string)
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if strings.HasPrefix(s.Key, "vcs.") {
				settings[s.Key] = s.Value
			}
		}
	}
	return settings
}

func parseTime(s string) time.Time {
	if s == "" || s == unknown {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
