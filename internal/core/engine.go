package core

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmreicha/awsp/internal/profiles"
	"github.com/jmreicha/awsp/internal/selector"
	"github.com/jmreicha/awsp/internal/shell"
)

// Prompter asks the user to pick one of profiles, highlighting current.
// It returns a profile name or selector.NoneValue.
type Prompter interface {
	Select(profiles []string, current string) (string, error)
}

// Engine coordinates a run: discovery, selection and export.
type Engine struct {
	config   *Config
	env      Env
	prompter Prompter
	logger   *slog.Logger
}

// NewEngine creates a new engine with the provided components.
func NewEngine(config *Config, env Env, prompter Prompter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		config:   config,
		env:      env,
		prompter: prompter,
		logger:   logger,
	}
}

// Result describes a completed selection.
type Result struct {
	// Value is the selected profile name or selector.NoneValue.
	Value string

	// Statement is the line written to the state file.
	Statement string

	// StatePath is the file that received Statement.
	StatePath string
}

// Profiles returns the profile names declared in the AWS shared files.
func (e *Engine) Profiles(_ context.Context) ([]string, error) {
	if err := e.env.RequireHome(); err != nil {
		return nil, err
	}

	src := e.config.Sources()
	e.logger.Debug("reading aws shared files", "credentials", src.CredentialsPath, "config", src.ConfigPath)

	names, err := profiles.Load(src)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("profiles found", "count", len(names))
	return names, nil
}

// Details returns the shared-config settings of every discovered profile.
func (e *Engine) Details(ctx context.Context) ([]profiles.Details, error) {
	names, err := e.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	return profiles.Describe(ctx, e.config.Sources(), names)
}

// Run prompts for a profile and writes the matching statement to the state
// file. The state file is only written after a confirmed selection.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	names, err := e.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	if e.prompter == nil {
		return nil, errors.New("no prompter configured")
	}

	value, err := e.prompter.Select(names, e.env.Profile)
	if err != nil {
		e.logger.Debug("selection ended without a choice", "error", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statement, err := shell.Statement(value, selector.NoneValue)
	if err != nil {
		return nil, err
	}

	statePath := e.config.StateFile
	if err := shell.WriteState(statePath, value, selector.NoneValue); err != nil {
		return nil, err
	}

	result := &Result{
		Value:     value,
		Statement: statement,
		StatePath: statePath,
	}

	e.logger.Debug("state file written", "path", statePath, "statement", result.Statement)
	return result, nil
}
