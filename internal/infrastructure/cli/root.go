package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Version string
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "textact [action] [text]",
		Short: "textact - AI text actions in your terminal",
		Long: "textact runs configurable AI text transformations over selected text,\n" +
			"with local plugins, result caching and per-action execution statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// A bare action reference routes through a detached run command
			// so its flags keep working: `textact summarize -m claude ...`.
			delegate := newRunCommand(container)
			delegate.SilenceUsage = true
			delegate.SetArgs(args)
			return delegate.ExecuteContext(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newActionsCommand(container))
	root.AddCommand(newStatsCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand(opts.Version))
	return root, nil
}
