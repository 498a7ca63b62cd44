package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/app"
)

func newStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [action]",
		Short: "Show execution statistics and prompt suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runStatsOverview(cmd, container)
			}
			return runStatsDetail(cmd, container, args[0])
		},
	}
}

func runStatsOverview(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shown := 0
	for _, action := range cfg.Actions {
		stats, ok := container.StatsEngine.Stats(action.ID)
		if !ok {
			continue
		}
		if shown == 0 {
			fmt.Fprintf(out, "  %s %s %s %s\n",
				styleMuted.Render(pad("action", 20)),
				styleMuted.Render(pad("runs", 8)),
				styleMuted.Render(pad("success", 9)),
				styleMuted.Render("avg time"))
		}
		shown++
		fmt.Fprintf(out, "  %s %s %s %s\n",
			styleEmph.Render(pad(action.ID, 20)),
			pad(humanize.Comma(int64(stats.TotalRuns)), 8),
			pad(fmt.Sprintf("%.0f%%", stats.SuccessRate*100), 9),
			formatDuration(int64(stats.AverageDurationMS)))
	}
	if shown == 0 {
		fmt.Fprintln(out, "No executions recorded yet.")
	}
	return nil
}

func runStatsDetail(cmd *cobra.Command, container *app.Container, ref string) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return err
	}
	action, ok := cfg.FindAction(ref)
	if !ok {
		return fmt.Errorf("action %q not found", ref)
	}
	stats, ok := container.StatsEngine.Stats(action.ID)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "No executions recorded for %s yet.\n", action.ID)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleEmph.Render(action.Name))
	fmt.Fprintf(out, "%s %s (%s ok, %s failed)\n",
		styleMuted.Render("runs:"),
		humanize.Comma(int64(stats.TotalRuns)),
		humanize.Comma(int64(stats.SuccessfulRuns)),
		humanize.Comma(int64(stats.FailedRuns)))
	fmt.Fprintf(out, "%s %.0f%%\n", styleMuted.Render("success:"), stats.SuccessRate*100)
	fmt.Fprintf(out, "%s %s\n", styleMuted.Render("avg time:"), formatDuration(int64(stats.AverageDurationMS)))
	if recent := container.StatsEngine.Entries(action.ID, 1); len(recent) > 0 {
		fmt.Fprintf(out, "%s %s\n", styleMuted.Render("last run:"), humanize.Time(recent[0].Timestamp))
	}

	if len(stats.TopFailureReasons) > 0 {
		fmt.Fprintln(out, styleMuted.Render("top failures:"))
		for _, reason := range stats.TopFailureReasons {
			fmt.Fprintf(out, "  %s %s (%d)\n", styleFail.Render("✗"), reason.Message, reason.Count)
		}
	}

	if suggestion, ok := container.StatsEngine.Suggest(action, stats); ok {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styleWarn.Render("Suggestion:")+" "+suggestion.Summary)
		if suggestion.SuggestedPrompt != "" {
			fmt.Fprintln(out, styleMuted.Render("Proposed prompt:"))
			fmt.Fprintln(out, styleCodeBox.Render(suggestion.SuggestedPrompt))
		}
	}
	return nil
}
