// Package selector presents the interactive profile picker.
package selector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jmreicha/awsp/internal/fuzzy"
)

const (
	// NoneValue is the value committed by the "[none]" choice.
	NoneValue = "awsp.none"

	// NoneTitle is the title shown for the "[none]" choice.
	NoneTitle = "[none]"

	// DefaultPageSize is the number of choices visible at once.
	DefaultPageSize = 20

	defaultMessage = "aws profile"
)

// ErrCancelled is returned when the user aborts the prompt.
var ErrCancelled = errors.New("selection cancelled")

// AskFunc runs a survey prompt. It matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Selector asks the user to choose one profile.
type Selector struct {
	ask      AskFunc
	message  string
	pageSize int
	stdio    terminal.Stdio
}

// Option configures a Selector.
type Option func(*Selector)

// WithAsk replaces the prompt runner.
func WithAsk(ask AskFunc) Option {
	return func(s *Selector) {
		if ask != nil {
			s.ask = ask
		}
	}
}

// WithPageSize sets the number of visible choices.
func WithPageSize(size int) Option {
	return func(s *Selector) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithStdio sets the streams the prompt reads from and renders to.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Option {
	return func(s *Selector) {
		s.stdio = terminal.Stdio{In: in, Out: out, Err: errOut}
	}
}

// New creates a Selector that renders on stderr so stdout stays clean.
func New(opts ...Option) *Selector {
	s := &Selector{
		ask:      survey.AskOne,
		message:  defaultMessage,
		pageSize: DefaultPageSize,
		stdio:    terminal.Stdio{In: os.Stdin, Out: os.Stderr, Err: os.Stderr},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Choices returns the "[none]" choice followed by one choice per profile.
func Choices(profiles []string) []fuzzy.Choice {
	choices := make([]fuzzy.Choice, 0, len(profiles)+1)
	choices = append(choices, fuzzy.Choice{Title: NoneTitle, Value: NoneValue})
	for _, name := range profiles {
		choices = append(choices, fuzzy.Choice{Title: name, Value: name})
	}
	return choices
}

// InitialIndex returns the index of the first choice whose value is
// current, or the index of the "[none]" choice.
func InitialIndex(choices []fuzzy.Choice, current string) int {
	if current == "" {
		return 0
	}
	for i, choice := range choices {
		if choice.Value == current {
			return i
		}
	}
	return 0
}

// Select prompts for a profile and returns the chosen value, which is
// either a profile name or NoneValue. current is highlighted initially.
func (s *Selector) Select(profiles []string, current string) (string, error) {
	choices := Choices(profiles)

	options := make([]string, 0, len(choices))
	for _, choice := range choices {
		options = append(options, choice.Title)
	}

	prompt := &survey.Select{
		Message:  s.message,
		Options:  options,
		Default:  InitialIndex(choices, current),
		PageSize: s.pageSize,
		Filter: func(filter, value string, _ int) bool {
			return fuzzy.Match(filter, value)
		},
	}

	var index int
	err := s.ask(prompt, &index, survey.WithStdio(s.stdio.In, s.stdio.Out, s.stdio.Err))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("profile prompt: %w", err)
	}

	if index < 0 || index >= len(choices) {
		return "", fmt.Errorf("profile prompt: selection %d out of range", index)
	}

	return choices[index].Value, nil
}
