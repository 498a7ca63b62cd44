package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/app"
	"github.com/textact/textact/internal/domain"
)

func newActionsCommand(container *app.Container) *cobra.Command {
	actionsCmd := &cobra.Command{
		Use:   "actions",
		Short: "Manage configured actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionsList(cmd, container)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionsList(cmd, container)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <action>",
		Short: "Show one action in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionsShow(cmd, container, args[0])
		},
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create an action interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionsNew(cmd, container)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionsRemove(cmd, container, args[0])
		},
	}

	actionsCmd.AddCommand(listCmd, showCmd, newCmd, removeCmd)
	return actionsCmd
}

func runActionsList(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, action := range cfg.Actions {
		target := action.Model
		switch {
		case action.IsPlugin():
			target = "plugin: " + action.Plugin
		case target == "":
			target = "default model"
		}
		fmt.Fprintf(out, "  %s %s %s %s\n",
			styleListMarker.Render(pad(action.Shortcut, 3)),
			styleEmph.Render(pad(action.ID, 20)),
			pad(action.Name, 24),
			styleMuted.Render(target))
	}
	return nil
}

func runActionsShow(cmd *cobra.Command, container *app.Container, ref string) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return err
	}
	action, ok := cfg.FindAction(ref)
	if !ok {
		return fmt.Errorf("action %q not found", ref)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleEmph.Render(action.Name))
	fmt.Fprintf(out, "%s %s\n", styleMuted.Render("id:"), action.ID)
	if action.Shortcut != "" {
		fmt.Fprintf(out, "%s %s\n", styleMuted.Render("shortcut:"), action.Shortcut)
	}
	if action.IsPlugin() {
		fmt.Fprintf(out, "%s %s\n", styleMuted.Render("plugin:"), action.Plugin)
	} else {
		model := action.Model
		if model == "" {
			model = cfg.Preferences.DefaultModel + " (default)"
		}
		fmt.Fprintf(out, "%s %s\n", styleMuted.Render("model:"), model)
		fmt.Fprintf(out, "%s\n%s\n", styleMuted.Render("prompt:"), action.Prompt)
	}
	if stats, ok := container.StatsEngine.Stats(action.ID); ok {
		fmt.Fprintf(out, "%s %s runs, %.0f%% success\n",
			styleMuted.Render("stats:"),
			humanize.Comma(int64(stats.TotalRuns)),
			stats.SuccessRate*100)
	}
	return nil
}

func runActionsNew(cmd *cobra.Command, container *app.Container) error {
	ctx := cmd.Context()
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}

	modelOpts := make([]huh.Option[string], 0, len(cfg.Models)+1)
	modelOpts = append(modelOpts, huh.NewOption("(default model)", ""))
	for _, model := range cfg.Models {
		modelOpts = append(modelOpts, huh.NewOption(model.Name, model.Name))
	}

	var (
		name     string
		prompt   string
		model    string
		shortcut string
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&name).
			Validate(func(value string) error {
				id := slugify(value)
				if id == "" {
					return errors.New("name is required")
				}
				if cfg.HasAction(id) {
					return fmt.Errorf("an action with id %s already exists", id)
				}
				return nil
			}),
		huh.NewText().
			Title("Prompt").
			Description("Instructions sent to the model ahead of the input text.").
			Value(&prompt).
			Validate(func(value string) error {
				if strings.TrimSpace(value) == "" {
					return errors.New("prompt is required")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Model").
			Options(modelOpts...).
			Value(&model),
		huh.NewInput().
			Title("Shortcut").
			Description("Optional short alias, e.g. a single letter.").
			Value(&shortcut),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("action creation aborted")
		}
		return err
	}

	action := domain.Action{
		ID:       slugify(name),
		Name:     strings.TrimSpace(name),
		Prompt:   strings.TrimSpace(prompt),
		Model:    model,
		Shortcut: strings.TrimSpace(shortcut),
	}
	if err := cfg.AddAction(action); err != nil {
		return err
	}
	if err := container.ConfigLoader.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added action %s\n", styleEmph.Render(action.ID))
	return nil
}

func runActionsRemove(cmd *cobra.Command, container *app.Container, id string) error {
	ctx := cmd.Context()
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	if err := cfg.RemoveAction(id); err != nil {
		return err
	}
	if err := container.ConfigLoader.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed action %s\n", id)
	return nil
}

// slugify derives an action id from its display name: lowercase, words
// joined by single dashes, everything else dropped.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == ' ', r == '-', r == '_':
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
