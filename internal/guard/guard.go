// Package guard protects an existing directory from being scaffolded over.
package guard

import (
	"context"
	"fmt"
	"os"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/spf13/afero"
)

// Menu choices shown when the target directory already exists.
const (
	ChoiceCancel = "Cancel operation"
	ChoiceRemove = "Remove existing files and continue"
)

// Chooser asks a single-select question. *prompt.Prompter satisfies it.
type Chooser interface {
	Select(ctx context.Context, question string, choices []string, defaultValue string) (string, error)
}

// Policy pre-answers the collision menu for non-interactive runs.
type Policy int

const (
	// PolicyAsk shows the menu.
	PolicyAsk Policy = iota
	// PolicyCancel cancels without asking.
	PolicyCancel
	// PolicyRemove removes the directory without asking.
	PolicyRemove
)

// Guard checks for a name collision before anything is created.
type Guard struct {
	fs      afero.Fs
	chooser Chooser
	policy  Policy
	logger  logging.Logger
}

// New creates a Guard.
func New(fs afero.Fs, chooser Chooser, policy Policy, logger logging.Logger) *Guard {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Guard{
		fs:      fs,
		chooser: chooser,
		policy:  policy,
		logger:  logger.WithComponent("guard"),
	}
}

// Check is a no-op when dir does not exist. Otherwise it resolves the
// collision: cancelling returns errors.ErrCancelled without touching the
// filesystem, removing deletes the whole tree before returning. Once ctx is
// done Check returns ctx.Err() and never removes anything.
func (g *Guard) Check(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := g.fs.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeStatFailed, "failed to inspect target directory", dir)
	}

	choice, err := g.choose(ctx, dir)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if choice != ChoiceRemove {
		g.logger.Info(ctx, "Target directory exists, cancelling", "dir", dir)
		return scaffolderrors.ErrCancelled
	}

	g.logger.Info(ctx, "Removing existing directory", "dir", dir)
	if err := g.fs.RemoveAll(dir); err != nil {
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeRemoveFailed, "failed to remove existing directory", dir)
	}

	return nil
}

func (g *Guard) choose(ctx context.Context, dir string) (string, error) {
	switch g.policy {
	case PolicyCancel:
		return ChoiceCancel, nil
	case PolicyRemove:
		return ChoiceRemove, nil
	}

	question := fmt.Sprintf("Target directory %q is not empty. Please choose how to proceed:", dir)
	choice, err := g.chooser.Select(ctx, question, []string{ChoiceCancel, ChoiceRemove}, ChoiceCancel)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", scaffolderrors.Wrap(err, scaffolderrors.ErrorTypeIO, scaffolderrors.ErrCodePromptFailed, "failed to read answer")
	}
	return choice, nil
}
