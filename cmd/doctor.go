package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/conneroisu/vitewind/internal/config"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/conneroisu/vitewind/internal/runner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools needed to generate a project are available",
	Long: `Diagnose the environment vitewind runs in.

The doctor command checks for:

- node, npm and npx on PATH, with their versions
- git on PATH and a configured commit identity
- a valid vitewind configuration

Examples:
  vitewind doctor                 # Human readable report
  vitewind doctor -o json         # Output as JSON for tooling
  vitewind doctor -o yaml         # Output as YAML`,
	RunE: runDoctor,
}

var doctorFormat = newFormatValue("table", "table", "json", "yaml")

const probeTimeout = 15 * time.Second

// Diagnostic statuses.
const (
	statusOK      = "ok"
	statusWarning = "warning"
	statusError   = "error"
	statusInfo    = "info"
)

// DiagnosticResult is the outcome of one check.
type DiagnosticResult struct {
	Name       string            `json:"name" yaml:"name"`
	Category   string            `json:"category" yaml:"category"`
	Status     string            `json:"status" yaml:"status"`
	Message    string            `json:"message" yaml:"message"`
	Suggestion string            `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Details    map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

// DoctorReport is the complete diagnostic report.
type DoctorReport struct {
	Timestamp   time.Time          `json:"timestamp" yaml:"timestamp"`
	Environment map[string]string  `json:"environment" yaml:"environment"`
	Results     []DiagnosticResult `json:"results" yaml:"results"`
	Summary     ReportSummary      `json:"summary" yaml:"summary"`
}

// ReportSummary counts results per status.
type ReportSummary struct {
	Total    int `json:"total" yaml:"total"`
	OK       int `json:"ok" yaml:"ok"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Errors   int `json:"errors" yaml:"errors"`
	Info     int `json:"info" yaml:"info"`
}

// doctorTools are the binaries doctor may probe for versions.
var doctorTools = map[string]bool{"node": true, "npm": true, "npx": true, "git": true}

// Overridden in tests.
var (
	lookPath        = exec.LookPath
	newDoctorRunner = func(logger logging.Logger) runner.Runner {
		return runner.NewExecRunner(doctorTools, runner.WithOutput(io.Discard), runner.WithLogger(logger))
	}
)

func init() {
	rootCmd.AddCommand(doctorCmd)
	addFormatFlag(doctorCmd, doctorFormat)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, cfgErr := loadConfig()
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		logger = logging.Discard()
	}

	report := buildDoctorReport(ctx, cfg, cfgErr, newDoctorRunner(logger))

	if err := writeDoctorReport(cmd.OutOrStdout(), report, doctorFormat.String()); err != nil {
		return fmt.Errorf("failed to output report: %w", err)
	}

	if report.Summary.Errors > 0 {
		return fmt.Errorf("%d of %d checks failed", report.Summary.Errors, report.Summary.Total)
	}
	return nil
}

func buildDoctorReport(ctx context.Context, cfg *config.Config, cfgErr error, r runner.Runner) *DoctorReport {
	report := &DoctorReport{
		Timestamp:   time.Now(),
		Environment: gatherEnvironmentInfo(),
	}

	report.Results = append(report.Results,
		checkTool(ctx, r, "Node.js", "node", "Install Node.js from https://nodejs.org"),
		checkTool(ctx, r, "Package manager", cfg.Tools.PackageManager, "npm ships with Node.js; reinstall Node.js or set tools.package_manager"),
		checkTool(ctx, r, "Package runner", cfg.Tools.PackageRunner, "npx ships with npm; reinstall Node.js or set tools.package_runner"),
	)

	if cfg.Pipeline.VCSInit {
		report.Results = append(report.Results,
			checkTool(ctx, r, "Git", cfg.Tools.VCS, "Install git or run with --no-git"),
			checkGitIdentity(ctx, r, cfg.Tools.VCS),
		)
	} else {
		report.Results = append(report.Results, DiagnosticResult{
			Name:     "Git",
			Category: "version control",
			Status:   statusInfo,
			Message:  "Repository initialisation is disabled (pipeline.vcs_init)",
		})
	}

	report.Results = append(report.Results, checkConfiguration(cfg, cfgErr))
	report.Summary = calculateSummary(report.Results)

	return report
}

func gatherEnvironmentInfo() map[string]string {
	env := map[string]string{
		"os":   runtime.GOOS,
		"arch": runtime.GOARCH,
	}
	if wd, err := os.Getwd(); err == nil {
		env["working_dir"] = wd
	}
	if used := viper.ConfigFileUsed(); used != "" {
		env["config_file"] = used
	}
	return env
}

func checkTool(ctx context.Context, r runner.Runner, name, binary, suggestion string) DiagnosticResult {
	category := "tools"
	if name == "Git" {
		category = "version control"
	}

	result := DiagnosticResult{Name: name, Category: category, Status: statusOK}

	path, err := lookPath(binary)
	if err != nil {
		result.Status = statusError
		result.Message = fmt.Sprintf("%s not found on PATH", binary)
		result.Suggestion = suggestion
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	res, err := r.Run(ctx, runner.Command{Name: binary, Args: []string{"--version"}, Message: "Checking " + binary})
	if err != nil {
		result.Status = statusWarning
		result.Message = fmt.Sprintf("%s found but did not report a version", binary)
		result.Details = map[string]string{"path": path}
		return result
	}

	version := firstLine(res.Stdout)
	result.Message = fmt.Sprintf("%s %s", binary, version)
	result.Details = map[string]string{"path": path, "version": version}
	return result
}

func checkGitIdentity(ctx context.Context, r runner.Runner, vcs string) DiagnosticResult {
	result := DiagnosticResult{Name: "Git identity", Category: "version control", Status: statusOK}

	if _, err := lookPath(vcs); err != nil {
		result.Status = statusInfo
		result.Message = "Skipped, git is not installed"
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	details := make(map[string]string)
	for _, key := range []string{"user.name", "user.email"} {
		res, err := r.Run(ctx, runner.Command{Name: vcs, Args: []string{"config", key}, Message: "Reading " + key})
		value := firstLine(res.Stdout)
		if err != nil || value == "" {
			result.Status = statusWarning
			result.Message = fmt.Sprintf("git %s is not set, the first commit will fail", key)
			result.Suggestion = fmt.Sprintf("git config --global %s <value>", key)
			return result
		}
		details[key] = value
	}

	result.Message = fmt.Sprintf("Commits will be authored by %s <%s>", details["user.name"], details["user.email"])
	result.Details = details
	return result
}

func checkConfiguration(cfg *config.Config, cfgErr error) DiagnosticResult {
	result := DiagnosticResult{Name: "Configuration", Category: "configuration", Status: statusOK}

	if cfgErr != nil {
		result.Status = statusError
		result.Message = cfgErr.Error()
		result.Suggestion = "Fix the file or run 'vitewind config validate' for details"
		return result
	}

	validation := config.ValidateConfigWithDetails(cfg)
	if validation.HasWarnings() {
		result.Status = statusWarning
		result.Message = validation.Warnings[0].Message
		if len(validation.Warnings[0].Suggestions) > 0 {
			result.Suggestion = validation.Warnings[0].Suggestions[0]
		}
		return result
	}

	result.Message = "Configuration is valid"
	return result
}

func calculateSummary(results []DiagnosticResult) ReportSummary {
	summary := ReportSummary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case statusOK:
			summary.OK++
		case statusWarning:
			summary.Warnings++
		case statusError:
			summary.Errors++
		case statusInfo:
			summary.Info++
		}
	}
	return summary
}

func writeDoctorReport(w io.Writer, report *DoctorReport, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(report)
	case "table", "":
		writeDoctorTable(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeDoctorTable(w io.Writer, report *DoctorReport) {
	title := cases.Title(language.English)

	var categories []string
	grouped := make(map[string][]DiagnosticResult)
	for _, r := range report.Results {
		if _, seen := grouped[r.Category]; !seen {
			categories = append(categories, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	for _, category := range categories {
		color.New(color.Bold).Fprintln(w, title.String(category))
		for _, r := range grouped[category] {
			fmt.Fprintf(w, "  %s %-16s %s\n", statusMark(r.Status), r.Name, r.Message)
			if r.Suggestion != "" {
				fmt.Fprintf(w, "    → %s\n", r.Suggestion)
			}
		}
		fmt.Fprintln(w)
	}

	s := report.Summary
	fmt.Fprintf(w, "%d checks: %d ok, %d warnings, %d errors\n", s.Total, s.OK, s.Warnings, s.Errors)
}

func statusMark(status string) string {
	switch status {
	case statusOK:
		return color.GreenString("✔")
	case statusWarning:
		return color.YellowString("!")
	case statusError:
		return color.RedString("✖")
	default:
		return color.CyanString("•")
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
