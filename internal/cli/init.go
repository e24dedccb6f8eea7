package cli

import (
	"fmt"
	"strings"

	"github.com/jmreicha/awsp/internal/core"
	"github.com/jmreicha/awsp/internal/shell"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init [bash|zsh]",
		Short:     "Print the shell integration",
		Long:      "Print a shell function that runs awsp and sources the state file.\nThe shell defaults to the basename of $SHELL.",
		Example:   `  eval "$(awsp init zsh)"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shell.Supported,
		RunE: func(cmd *cobra.Command, args []string) error {
			shellType := shell.Detect(env.Shell)
			if len(args) == 1 {
				shellType = args[0]
			}

			snippet := shell.HookSnippet(shellType, core.HookBinary(), config.StateFile)
			if snippet == "" {
				return fmt.Errorf("unsupported shell %q (supported: %s)", shellType, strings.Join(shell.Supported, ", "))
			}

			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}

	return cmd
}
