package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/poolheat/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long: `Prints the effective value at a dotted key. Naming a section such as
"model" prints the whole section as YAML.`,
		Example: `  poolheat config get output.default_format
  poolheat config get model.panel_cost
  poolheat config get model`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return invalidInput(err)
			}
			return printValue(cmd, v)
		},
	}
}

// printValue prints scalars bare and sections as YAML on stdout.
func printValue(cmd *cobra.Command, v any) error {
	if m, ok := v.(map[string]any); ok {
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshalling value: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Sets the value at a dotted key and saves the file. Inside a project with a
.poolheat/config.yaml the project file is edited; otherwise, or with --global,
the global file is. The updated configuration must validate before it is saved.`,
		Example: `  poolheat config set output.default_format json
  poolheat config set model.escalation_rate 0.04
  poolheat config set defaults.season march-to-thanksgiving
  poolheat config set report.location "Phoenix, AZ"`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1], global)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "edit the global configuration even inside a project")

	return cmd
}

// runConfigSet edits one file. Only that file's contents plus built-in defaults
// are saved back, never environment overrides or another layer.
func runConfigSet(cmd *cobra.Command, key, value string, global bool) error {
	path := config.DefaultConfigPath()
	if dir := config.GetResolvedProjectDir(); dir != "" && !global {
		projectPath := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(projectPath); err == nil {
			path = projectPath
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return invalidInput(err)
	}
	if err := cfg.Validate(); err != nil {
		return invalidInput(fmt.Errorf("%s=%s rejected: %w", key, value, err))
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	config.SetGlobalConfig(nil)
	cmd.Printf("Set %s = %s in %s\n", key, value, path)
	return nil
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Example: `  poolheat config list
  poolheat config list --prefix model`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := config.GetGlobalConfig().List()
			if err != nil {
				return err
			}
			for _, kv := range entries {
				if prefix != "" && kv.Key != prefix && !strings.HasPrefix(kv.Key, prefix+".") {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", kv.Key, kv.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list keys under this section")

	return cmd
}
