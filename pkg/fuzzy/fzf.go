package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
	"golang.org/x/term"
)

// optionSeparator joins value and description in the fzf display line.
const optionSeparator = "  │  "

// Runner abstracts the fzf invocation so selection can be tested without
// a terminal.
type Runner interface {
	Run(opts *fzf.Options) (int, error)
}

type defaultRunner struct{}

func (defaultRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// Select presents the finder's options interactively. On a terminal it
// runs fzf; otherwise it falls back to the numbered list on stdio.
func (f *Finder) Select() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return f.selectFzf(defaultRunner{})
	}
	return f.selectPlain(os.Stdin, os.Stdout)
}

// selectFzf feeds the options to fzf through a stdin swap and captures the
// selected line from the swapped stdout.
func (f *Finder) selectFzf(runner Runner) (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	tmpFile, err := os.CreateTemp("", "biao-select-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	for _, option := range f.options {
		line := option.Value
		if option.Description != "" {
			line += optionSeparator + option.Description
		}
		if _, err := fmt.Fprintln(tmpFile, line); err != nil {
			return "", fmt.Errorf("failed to write option: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}

	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=10",
		"--layout=default",
		"--no-multi",
		"--cycle",
		"--no-mouse",
		"--border=none",
	}

	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return "", fmt.Errorf("failed to parse fzf options: %w", err)
	}

	input, err := os.Open(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to open option list: %w", err)
	}
	defer func() { _ = input.Close() }()

	originalStdin := os.Stdin
	os.Stdin = input
	defer func() { os.Stdin = originalStdin }()

	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() { _ = r.Close() }()

	originalStdout := os.Stdout
	os.Stdout = w

	exitCode, err := runner.Run(opts)

	_ = w.Close()
	os.Stdout = originalStdout

	if err != nil {
		// fzf could not run in this environment; fall back.
		return f.selectPlain(originalStdin, originalStdout)
	}
	if exitCode != fzf.ExitOk {
		return "", fmt.Errorf("selection cancelled")
	}

	result, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}

	selected := strings.TrimSpace(string(result))
	if selected == "" {
		return "", fmt.Errorf("no selection made")
	}

	value, _, _ := strings.Cut(selected, optionSeparator)
	return strings.TrimSpace(value), nil
}
