package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the execution log",
	}

	var (
		limit    int
		actionID string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, container, actionID, limit)
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show, 0 for all")
	listCmd.Flags().StringVar(&actionID, "action", "", "Only show runs of this action id")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive("Delete all recorded executions?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := container.StatsEngine.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Execution log cleared.")
			return nil
		},
	}

	var compress bool
	exportCmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the execution log as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryExport(cmd, container, args[0], compress)
		},
	}
	exportCmd.Flags().BoolVar(&compress, "gzip", false, "Compress the export with gzip")

	// Bare `textact history` behaves like `history list`.
	historyCmd.RunE = listCmd.RunE
	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show, 0 for all")
	historyCmd.Flags().StringVar(&actionID, "action", "", "Only show runs of this action id")

	historyCmd.AddCommand(listCmd, clearCmd, exportCmd)
	return historyCmd
}

func runHistoryList(cmd *cobra.Command, container *app.Container, actionID string, limit int) error {
	entries := container.StatsEngine.Entries(actionID, limit)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No executions recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, entry := range entries {
		status := styleOK.Render("ok")
		if !entry.Success {
			status = styleFail.Render("failed")
		}
		fmt.Fprintf(out, "%s  %s %s %s %s\n",
			styleMuted.Render(entry.Timestamp.Local().Format("2006-01-02 15:04")),
			styleEmph.Render(pad(entry.ActionID, 20)),
			pad(entry.ModelID, 24),
			pad(formatDuration(entry.DurationMS), 7),
			status)
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, container *app.Container, path string, compress bool) error {
	entries := container.StatsEngine.Entries("", 0)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	var w io.Writer = file
	var gzw *gzip.Writer
	if compress {
		gzw = gzip.NewWriter(file)
		w = gzw
	}

	enc := json.NewEncoder(w)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			file.Close()
			return fmt.Errorf("encode entry: %w", err)
		}
	}
	if gzw != nil {
		// Close flushes the remaining compressed blocks before the file closes.
		if err := gzw.Close(); err != nil {
			file.Close()
			return fmt.Errorf("flush gzip stream: %w", err)
		}
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s entries to %s\n", humanize.Comma(int64(len(entries))), path)
	return nil
}
