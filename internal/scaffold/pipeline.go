package scaffold

import (
	"context"

	"github.com/conneroisu/vitewind/internal/config"
	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/conneroisu/vitewind/internal/runner"
	"github.com/conneroisu/vitewind/internal/templates"
)

// Prompter asks the two setup questions. *prompt.Prompter satisfies it.
type Prompter interface {
	AskProjectName(ctx context.Context, defaultName string) (string, error)
	AskTypeScript(ctx context.Context, defaultYes bool) (bool, error)
}

// Guard resolves a collision with an existing directory.
type Guard interface {
	Check(ctx context.Context, dir string) error
}

// Writer applies template files below a project directory.
type Writer interface {
	Write(ctx context.Context, root string, files []templates.File) error
}

// Reporter prints the opening header and the completion banner.
type Reporter interface {
	Intro()
	Report(s config.Session)
}

// Components are the collaborators of a Pipeline.
type Components struct {
	Prompter Prompter
	Guard    Guard
	Runner   runner.Runner
	Writer   Writer
	Reporter Reporter
	Logger   logging.Logger
}

// Options pre-answer questions for scripted runs.
type Options struct {
	// Name skips the name question when set.
	Name string
	// Language skips the language question when set.
	Language config.Language
	// AssumeDefaults answers every remaining question with its default.
	AssumeDefaults bool
}

// Pipeline runs one generation from prompts to completion banner.
type Pipeline struct {
	cfg        *config.Config
	components Components
	opts       Options
	logger     logging.Logger
	state      State
}

// New creates a Pipeline.
func New(cfg *config.Config, components Components, opts Options) *Pipeline {
	logger := components.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{
		cfg:        cfg,
		components: components,
		opts:       opts,
		logger:     logger.WithComponent("scaffold"),
	}
}

// State returns the phase the last run reached.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the whole flow. Every step blocks until it has finished and
// the first failure stops the run. A cancellation at the collision menu
// returns an error for which errors.IsCancelled is true and nothing is
// spawned. Once ctx is done no further question is asked and no further
// stage starts; Run returns ctx.Err(). The returned session holds every
// answer given so far.
func (p *Pipeline) Run(ctx context.Context) (config.Session, error) {
	session := config.NewSession(p.cfg)

	if p.components.Reporter != nil {
		p.components.Reporter.Intro()
	}

	p.transition(ctx, StatePrompting)
	name, err := p.projectName(ctx)
	if err != nil {
		return session, p.fail(ctx, err)
	}
	session.Name = name

	if err := p.interrupted(ctx); err != nil {
		return session, err
	}
	p.transition(ctx, StateExistenceCheck)
	if err := p.components.Guard.Check(ctx, session.ProjectDir()); err != nil {
		if scaffolderrors.IsCancelled(err) {
			p.transition(ctx, StateCancelled)
			return session, err
		}
		return session, p.fail(ctx, err)
	}

	if err := p.interrupted(ctx); err != nil {
		return session, err
	}
	lang, err := p.language(ctx)
	if err != nil {
		return session, p.fail(ctx, err)
	}
	session.Language = lang

	p.logger.Info(ctx, "Generating project",
		"name", session.Name,
		"language", string(session.Language),
		"vcs_init", session.VCSInit,
		"rich_templates", session.RichTemplates)

	templatesWritten := false
	for _, step := range Plan(session, p.cfg.Tools, p.cfg.Git.CommitMessage) {
		if err := p.interrupted(ctx); err != nil {
			return session, err
		}
		if step.State == StateVCSInit && !templatesWritten {
			if err := p.writeTemplates(ctx, session); err != nil {
				return session, p.fail(ctx, err)
			}
			templatesWritten = true
		}

		p.transition(ctx, step.State)
		if _, err := p.components.Runner.Run(ctx, step.Command); err != nil {
			return session, p.fail(ctx, err)
		}
	}

	if err := p.interrupted(ctx); err != nil {
		return session, err
	}
	if !templatesWritten {
		if err := p.writeTemplates(ctx, session); err != nil {
			return session, p.fail(ctx, err)
		}
	}

	p.transition(ctx, StateDone)
	if p.components.Reporter != nil {
		p.components.Reporter.Report(session)
	}

	return session, nil
}

func (p *Pipeline) projectName(ctx context.Context) (string, error) {
	if p.opts.Name != "" {
		return p.opts.Name, nil
	}
	if p.opts.AssumeDefaults {
		return p.cfg.Defaults.Name, nil
	}

	name, err := p.components.Prompter.AskProjectName(ctx, p.cfg.Defaults.Name)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", scaffolderrors.Wrap(err, scaffolderrors.ErrorTypeIO,
			scaffolderrors.ErrCodePromptFailed, "failed to read project name")
	}
	return name, nil
}

func (p *Pipeline) language(ctx context.Context) (config.Language, error) {
	if p.opts.Language != "" {
		return p.opts.Language, nil
	}
	if p.opts.AssumeDefaults {
		return config.LanguageFor(p.cfg.Defaults.TypeScript), nil
	}

	ts, err := p.components.Prompter.AskTypeScript(ctx, p.cfg.Defaults.TypeScript)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", scaffolderrors.Wrap(err, scaffolderrors.ErrorTypeIO,
			scaffolderrors.ErrCodePromptFailed, "failed to read language choice")
	}
	return config.LanguageFor(ts), nil
}

func (p *Pipeline) writeTemplates(ctx context.Context, s config.Session) error {
	p.transition(ctx, StateTemplates)

	perf := logging.StartOperation(p.logger, "write templates")
	if err := p.components.Writer.Write(ctx, s.ProjectDir(), templates.Files(s)); err != nil {
		perf.EndWithError(ctx, err)
		return err
	}
	perf.End(ctx)

	return nil
}

func (p *Pipeline) transition(ctx context.Context, next State) {
	if p.state == next {
		return
	}
	p.logger.Debug(ctx, "State transition", "from", string(p.state), "to", string(next))
	p.state = next
}

// interrupted ends the run once ctx is done.
func (p *Pipeline) interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, err)
	}
	return nil
}

func (p *Pipeline) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		p.logger.Debug(ctx, "Run interrupted", "state", string(p.state))
		p.transition(ctx, StateCancelled)
		return err
	}
	p.logger.Debug(ctx, "Run failed", "state", string(p.state), "error", err.Error())
	p.transition(ctx, StateFailed)
	return err
}
