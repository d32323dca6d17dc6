package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/viper"
)

// interruptExitCode is the conventional status for a run stopped by SIGINT.
const interruptExitCode = 130

// ExitCode reports err to the user and returns the process exit status.
func ExitCode(err error) int {
	return exitStatus(os.Stdout, os.Stderr, err, viper.GetInt("cancel_exit_code"))
}

func exitStatus(out, errOut io.Writer, err error, cancelCode int) int {
	if err == nil {
		return 0
	}

	if scaffolderrors.IsCancelled(err) {
		fmt.Fprintln(out, "Operation cancelled")
		return cancelCode
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "Operation cancelled")
		return interruptExitCode
	}

	message := color.New(color.FgRed, color.Bold).Sprint("Error: ") + err.Error()
	fmt.Fprintln(errOut, scaffolderrors.FormatSuggestions(message, scaffolderrors.SuggestFor(err)))

	return scaffolderrors.ExitCodeOf(err, cancelCode)
}
