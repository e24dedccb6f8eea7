// Package cli provides the command-line interface for awsp.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jmreicha/awsp/internal/core"
	"github.com/jmreicha/awsp/internal/selector"
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	cfgFile   string
	debug     bool
	stateFile string

	// Shared components.
	env    core.Env
	config *core.Config
	engine *core.Engine
	logger *slog.Logger

	// lookupEnv and newPrompter are replaced in tests.
	lookupEnv   = os.LookupEnv
	newPrompter = func(cfg *core.Config) core.Prompter {
		return selector.New(selector.WithPageSize(cfg.PageSize))
	}
)

// NewRootCmd creates the root command for awsp. Running it without a
// subcommand opens the profile selector.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "awsp",
		Short: "Switch the active AWS profile",
		Long: `Pick an AWS profile from ~/.aws/credentials and ~/.aws/config and write
the matching export statement to ~/.awsp for the parent shell to source.

Add the shell integration with: eval "$(awsp init)"`,

		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initializeComponents()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelect(cmd.Context())
		},
	}

	helpTemplate := strings.ReplaceAll(rootCmd.HelpTemplate(), "Available Commands:", "Commands:")
	usageTemplate := strings.ReplaceAll(rootCmd.UsageTemplate(), "Available Commands:", "Commands:")
	rootCmd.SetHelpTemplate(helpTemplate)
	rootCmd.SetUsageTemplate(usageTemplate)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search in standard locations)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", "", "file receiving the export statement (default: ~/.awsp)")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// initializeComponents sets up the core components needed by all commands.
func initializeComponents() error {
	// Set up logger
	logLevel := slog.LevelError
	if debug {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// HOME is checked before any file is touched
	env = core.EnvFrom(lookupEnv)
	if err := env.RequireHome(); err != nil {
		return err
	}

	// Load configuration
	var err error
	config, err = core.LoadConfig(cfgFile, env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags
	config.Merge(&core.Config{StateFile: stateFile})

	if err := config.Validate(env); err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"credentials_file", config.CredentialsFile,
		"config_file", config.ConfigFile,
		"state_file", config.StateFile,
		"page_size", config.PageSize,
	)

	engine = core.NewEngine(config, env, newPrompter(config), logger)
	return nil
}

func runSelect(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	logger.Debug("profile selected", "value", result.Value)
	return nil
}
