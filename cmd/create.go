package cmd

import (
	"io"

	"github.com/conneroisu/vitewind/internal/config"
	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/guard"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/conneroisu/vitewind/internal/prompt"
	"github.com/conneroisu/vitewind/internal/report"
	"github.com/conneroisu/vitewind/internal/runner"
	"github.com/conneroisu/vitewind/internal/scaffold"
	"github.com/conneroisu/vitewind/internal/templates"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"new", "c"},
	Short:   "Generate a new project (same as running vitewind without a command)",
	Long: `Generate a new Vite + React + Tailwind CSS project.

Without flags every question is asked interactively. Flags pre-answer them:

Examples:
  vitewind create                         # Fully interactive
  vitewind create dashboard               # Name given, language asked
  vitewind create dashboard --lang ts     # No questions
  vitewind create --yes                   # Use the configured defaults
  vitewind create dashboard --force       # Replace an existing directory
  vitewind create dashboard --no-git      # Skip git init and the first commit
  vitewind create dashboard --minimal     # Only the Tailwind files and App component`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

type createOptions struct {
	name    string
	lang    languageValue
	yes     bool
	force   bool
	noGit   bool
	minimal bool
}

var createOpts createOptions

// Overridden in tests.
var (
	newFs     = afero.NewOsFs
	newRunner = func(out io.Writer, logger logging.Logger) runner.Runner {
		return runner.NewExecRunner(config.AllowedTools, runner.WithOutput(out), runner.WithLogger(logger))
	}
)

func init() {
	rootCmd.AddCommand(createCmd)
	addCreateFlags(createCmd, &createOpts)
}

func addCreateFlags(cmd *cobra.Command, opts *createOptions) {
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Project name (skips the name question)")
	cmd.Flags().Var(&opts.lang, "lang", "Project language: ts or js (skips the TypeScript question)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults for every unanswered question")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove an existing directory with the same name without asking")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "Skip git init and the first commit")
	cmd.Flags().BoolVar(&opts.minimal, "minimal", false, "Skip tsconfig, .gitignore and App.css cleanup")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := createOpts
	if len(args) == 1 {
		opts.name = args[0]
	}
	if opts.noGit {
		cfg.Pipeline.VCSInit = false
	}
	if opts.minimal {
		cfg.Pipeline.RichTemplates = false
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fs := newFs()
	prompter := prompt.New(cmd.InOrStdin(), out)

	policy := guard.PolicyAsk
	switch {
	case opts.force:
		policy = guard.PolicyRemove
	case opts.yes:
		policy = guard.PolicyCancel
	}

	pipeline := scaffold.New(cfg, scaffold.Components{
		Prompter: prompter,
		Guard:    guard.New(fs, prompter, policy, logger),
		Runner:   newRunner(out, logger),
		Writer:   templates.NewWriter(fs, logger),
		Reporter: report.New(out, cfg.Tools.PackageManager),
		Logger:   logger,
	}, scaffold.Options{
		Name:           opts.name,
		Language:       opts.lang.Language(),
		AssumeDefaults: opts.yes,
	})

	if _, err := pipeline.Run(ctx); err != nil {
		scaffolderrors.NewErrorHandler(logger).Handle(ctx, err)
		return err
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, scaffolderrors.WrapConfig(err, scaffolderrors.ErrCodeConfigInvalid, "failed to load configuration")
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, scaffolderrors.WrapConfig(err, scaffolderrors.ErrCodeConfigInvalid, "invalid log level")
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: out,
	}), nil
}
