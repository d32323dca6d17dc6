// Package prompt implements the line-oriented questions vitewind asks: a
// free-text input with a default and a single-select menu.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	questionMark = color.New(color.FgGreen, color.Bold).Sprint("?")
	hint         = color.New(color.Faint)
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer

	start sync.Once
	lines chan line
	// err is the error that ended the input, returned by every later read.
	err error
}

type line struct {
	text string
	err  error
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// scan feeds lines to readLine until the input ends. A blocked terminal read
// cannot be interrupted, so it lives in its own goroutine.
func (p *Prompter) scan() {
	defer close(p.lines)
	for {
		text, err := p.reader.ReadString('\n')
		p.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// readLine returns one line without its line terminator, or ctx.Err() once
// ctx is done. io.EOF is only returned when nothing at all was read.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.start.Do(func() {
		p.lines = make(chan line)
		go p.scan()
	})

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", p.err
		}
		if l.err != nil {
			p.err = l.err
			if !(errors.Is(l.err, io.EOF) && l.text != "") {
				return "", l.err
			}
		}
		return strings.TrimRight(l.text, "\r\n"), nil
	}
}

// Input asks a free-text question. An empty answer, or end of input, selects
// defaultValue. Anything else is returned exactly as typed. A cancelled ctx
// abandons the question and returns ctx.Err().
func (p *Prompter) Input(ctx context.Context, question, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "%s %s %s ", questionMark, question, hint.Sprintf("(%s)", defaultValue))

	input, err := p.readLine(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return defaultValue, nil
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// Select asks the user to pick one of choices, either by its text
// (case-insensitive) or by its 1-based number. An empty answer, or end of
// input, selects defaultValue. Unrecognized answers re-ask.
func (p *Prompter) Select(ctx context.Context, question string, choices []string, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "%s %s\n", questionMark, question)
	for i, choice := range choices {
		marker := " "
		if choice == defaultValue {
			marker = ">"
		}
		fmt.Fprintf(p.out, "  %s %d. %s\n", marker, i+1, choice)
	}

	for {
		fmt.Fprintf(p.out, "  Choice %s ", hint.Sprintf("(%s)", defaultValue))

		input, err := p.readLine(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return defaultValue, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return defaultValue, nil
		}

		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}

		for _, choice := range choices {
			if strings.EqualFold(input, choice) {
				return choice, nil
			}
		}

		fmt.Fprintf(p.out, "  Please choose one of: %s\n", strings.Join(choices, ", "))
	}
}
