package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/textact/textact/internal/app"
	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/infrastructure/keystore"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textact configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value by dotted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.Context(), cmd.OutOrStdout(), container, args[0])
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value by dotted key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runConfigSet(cmd.Context(), container, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the bundled default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive("Replace your configuration with the defaults?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if _, err := container.ConfigLoader.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset at %s\n", container.ConfigLoader.Path())
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigEdit(container)
		},
	}

	var keyValue string
	setKeyCmd := &cobra.Command{
		Use:   "set-key <provider>",
		Short: "Store a provider API key in the OS keychain",
		Long:  "Store an API key for a provider kind (anthropic or openai) in the OS keychain.\nKeychain entries take precedence over environment variables.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSetKey(cmd, container, args[0], keyValue)
		},
	}
	setKeyCmd.Flags().StringVar(&keyValue, "key", "", "API key value, prompted for when omitted")

	unsetKeyCmd := &cobra.Command{
		Use:   "unset-key <provider>",
		Short: "Remove a provider API key from the OS keychain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigUnsetKey(cmd, container, args[0])
		},
	}

	configCmd.AddCommand(showCmd, getCmd, setCmd, pathCmd, resetCmd, editCmd, setKeyCmd, unsetKeyCmd)
	return configCmd
}

func runConfigShow(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigGet(ctx context.Context, out io.Writer, container *app.Container, key string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	generic, err := configAsMap(cfg)
	if err != nil {
		return err
	}
	value, ok := traverseKey(generic, strings.Split(key, "."))
	if !ok {
		return fmt.Errorf("key %s not found", key)
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigSet(ctx context.Context, container *app.Container, key, value string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	cfgMap, err := configAsMap(cfg)
	if err != nil {
		return err
	}

	if !setMapValue(cfgMap, strings.Split(key, "."), parseValue(value)) {
		return fmt.Errorf("unable to set key %s", key)
	}

	updatedRaw, err := yaml.Marshal(cfgMap)
	if err != nil {
		return err
	}
	var updated domain.Config
	if err := yaml.Unmarshal(updatedRaw, &updated); err != nil {
		return fmt.Errorf("value does not fit the configuration schema: %w", err)
	}
	if err := updated.ValidateConsistency(); err != nil {
		return err
	}

	return container.ConfigLoader.Save(ctx, updated)
}

// configAsMap round-trips the config through YAML so dotted keys address
// the same names the config file uses.
func configAsMap(cfg domain.Config) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	cfgMap := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &cfgMap); err != nil {
		return nil, err
	}
	return cfgMap, nil
}

func traverseKey(data interface{}, path []string) (interface{}, bool) {
	if len(path) == 0 {
		return data, true
	}
	switch node := data.(type) {
	case map[string]interface{}:
		next, ok := node[path[0]]
		if !ok {
			return nil, false
		}
		return traverseKey(next, path[1:])
	default:
		return nil, false
	}
}

// parseValue interprets the raw argument as YAML so booleans and numbers
// keep their type; anything unparsable stays a string.
func parseValue(input string) interface{} {
	var parsed interface{}
	if err := yaml.Unmarshal([]byte(input), &parsed); err != nil {
		return input
	}
	return parsed
}

func setMapValue(root map[string]interface{}, path []string, value interface{}) bool {
	if len(path) == 0 {
		return false
	}
	current := root
	for i := 0; i < len(path)-1; i++ {
		key := path[i]
		next, ok := current[key]
		if !ok {
			newChild := map[string]interface{}{}
			current[key] = newChild
			current = newChild
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			current[key] = child
		}
		current = child
	}
	current[path[len(path)-1]] = value
	return true
}

func runConfigEdit(container *app.Container) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, container.ConfigLoader.Path())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func runConfigSetKey(cmd *cobra.Command, container *app.Container, provider, key string) error {
	if key == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		key = strings.TrimSpace(string(raw))
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := container.Keys.Set(provider, key); err != nil {
		return fmt.Errorf("store key: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored key for %s\n", provider)
	return nil
}

func runConfigUnsetKey(cmd *cobra.Command, container *app.Container, provider string) error {
	err := container.Keys.Delete(provider)
	if errors.Is(err, keystore.ErrKeyNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "No key stored for %s\n", provider)
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove key: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed key for %s\n", provider)
	return nil
}
