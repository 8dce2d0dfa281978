// Package fuzzy provides interactive selection of one value from a list,
// backed by the fzf library when running on a terminal with a plain
// numbered-list fallback otherwise.
package fuzzy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Option represents a selectable option
type Option struct {
	Value       string
	Description string
}

// Finder presents options and returns the chosen value.
type Finder struct {
	prompt  string
	options []Option
}

// New creates a finder with the given prompt.
func New(prompt string) *Finder {
	return &Finder{prompt: prompt}
}

// AddOption adds an option to the finder.
func (f *Finder) AddOption(value, description string) {
	f.options = append(f.options, Option{Value: value, Description: description})
}

// Options returns all available options.
func (f *Finder) Options() []Option {
	return f.options
}

// selectPlain runs the numbered-list fallback, reading the choice from in
// and writing the menu to out.
func (f *Finder) selectPlain(in io.Reader, out io.Writer) (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	fmt.Fprintln(out, f.prompt)
	for i, option := range f.options {
		fmt.Fprintf(out, "%d. %s", i+1, option.Value)
		if option.Description != "" {
			fmt.Fprintf(out, " - %s", option.Description)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\nSelect option (1-%d): ", len(f.options))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	selection, err := strconv.Atoi(line)
	if err != nil {
		return "", fmt.Errorf("invalid selection: %s", line)
	}
	if selection < 1 || selection > len(f.options) {
		return "", fmt.Errorf("selection out of range: %d", selection)
	}

	return f.options[selection-1].Value, nil
}
