package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/infrastructure/update"
)

func newVersionCommand(version string) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textact %s\n", version)
			if !check {
				return nil
			}

			release, err := update.NewChecker().Latest(cmd.Context())
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}
			if update.NeedsUpdate(version, release.TagName) {
				fmt.Fprintf(out, "Update available: %s (you have %s)\n", release.TagName, version)
				fmt.Fprintln(out, styleMuted.Render(release.HTMLURL))
			} else {
				fmt.Fprintln(out, "You are on the latest version.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
