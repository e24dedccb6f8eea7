package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listLong bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available profiles",
		Long: `List the profiles declared in the AWS shared credentials and config files.
The active AWS_PROFILE is marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if listLong {
				return printDetails(ctx, cmd.OutOrStdout())
			}
			return printProfiles(ctx, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&listLong, "long", "l", false, "show region and sso start url for each profile")

	return cmd
}

func printProfiles(ctx context.Context, out io.Writer) error {
	names, err := engine.Profiles(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintf(out, "%s %s\n", activeMarker(name), name)
	}

	return nil
}

func printDetails(ctx context.Context, out io.Writer) error {
	details, err := engine.Details(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  PROFILE\tREGION\tSSO START URL")
	for _, d := range details {
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", activeMarker(d.Name), d.Name, orDash(d.Region), orDash(d.SSOStartURL))
	}

	return w.Flush()
}

func activeMarker(name string) string {
	if env.Profile != "" && name == env.Profile {
		return "*"
	}
	return " "
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
