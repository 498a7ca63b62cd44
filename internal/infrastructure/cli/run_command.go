package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/textact/textact/internal/app"
	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/infrastructure/tui"
	"github.com/textact/textact/internal/ports"
)

func newRunCommand(container *app.Container) *cobra.Command {
	var (
		model   string
		copyOut bool
		noCache bool
		plain   bool
		view    bool
	)

	cmd := &cobra.Command{
		Use:   "run <action> [text]",
		Short: "Run an action over the input text",
		Long: "Run an action over text taken from the arguments, piped stdin or the\n" +
			"clipboard, in that order of preference.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args[1:], container.Clipboard)
			if err != nil {
				return err
			}

			spin := newRunSpinner(args[0])
			if spin != nil {
				spin.Start()
			}
			result, err := container.RunService.Run(domain.RunRequest{
				Context:         cmd.Context(),
				ActionRef:       args[0],
				Input:           input,
				ModelOverride:   model,
				CopyToClipboard: copyOut,
				NoCache:         noCache,
			})
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			output := result.Output
			if !plain {
				output = RenderMarkdown(result.Output)
			}

			if view {
				title := fmt.Sprintf("%s · %s", result.Action.Name, result.ModelID)
				return tui.View(title, output)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			printRunFooter(cmd.ErrOrStderr(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Override the model for this run")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the result cache")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the raw result without styling")
	cmd.Flags().BoolVar(&view, "view", false, "Open the result in a scrollable viewer")

	return cmd
}

// resolveInput picks the input text: explicit arguments win, then piped
// stdin, then the clipboard. An empty result is reported by the run service
// so the message stays consistent across entry points.
func resolveInput(args []string, clip ports.Clipboard) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if clip != nil && clip.Enabled() {
		if text, err := clip.Read(); err == nil {
			return text, nil
		}
	}
	return "", nil
}

// newRunSpinner returns a spinner bound to stderr, or nil when stderr is not
// a terminal.
func newRunSpinner(action string) *Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return NewSpinner(os.Stderr, "running "+action)
}

func printRunFooter(w io.Writer, result domain.RunResult) {
	meta := fmt.Sprintf("%s · %s · %s", result.Provider, result.ModelID, formatDuration(result.DurationMS))
	if result.FromCache {
		meta += " · cached"
	}
	fmt.Fprintln(w, styleMuted.Render(meta))
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
