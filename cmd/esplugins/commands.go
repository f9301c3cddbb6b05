package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Beed-git/endless-sky/internal/files"
	"github.com/Beed-git/endless-sky/internal/logger"
	"github.com/Beed-git/endless-sky/internal/plugin"
)

// options holds the paths every subcommand works against.
type options struct {
	pluginsDir     string
	globalSettings string
	localSettings  string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "esplugins",
		Short: "Inspect and toggle installed game plugins",
		Long: `esplugins manages the content plugins installed for the game.

It reads each plugin directory's plugin.txt descriptor, overlays the enabled
state persisted in the global and local plugins.txt settings files, and can
toggle plugins on or off for the next game launch.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.pluginsDir, "plugins-dir",
		filepath.Join(files.ConfigDir(), "plugins"), "directory holding installed plugins")
	flags.StringVar(&opts.globalSettings, "global-settings",
		filepath.Join(files.ResourcesDir(), "plugins.txt"), "global plugin settings file")
	flags.StringVar(&opts.localSettings, "local-settings",
		filepath.Join(files.ConfigDir(), "plugins.txt"), "local plugin settings file")

	root.AddCommand(newListCommand(opts))
	root.AddCommand(newShowCommand(opts))
	root.AddCommand(newToggleCommand(opts))

	return root
}

// load discovers the plugin directories under opts.pluginsDir, loads each
// into a fresh registry, and overlays the persisted state.
func load(opts *options, log logger.Logger) (*plugin.Registry, *plugin.Settings) {
	registry := plugin.NewRegistry()
	loader := plugin.NewLoader(registry, log)

	if entries, err := os.ReadDir(opts.pluginsDir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(opts.pluginsDir, entry.Name())
			if plugin.IsPluginDirectory(dir) {
				loader.Load(dir)
			}
		}
	}

	settings := plugin.NewSettings(registry, opts.globalSettings, opts.localSettings)
	settings.Load()
	return registry, settings
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed plugins and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, _ := load(opts, logger.New())

			enabled := color.New(color.FgGreen).SprintFunc()
			disabled := color.New(color.FgRed).SprintFunc()

			for _, p := range registry.All() {
				if !p.IsValid() {
					continue
				}
				state := disabled("disabled")
				if p.CurrentState {
					state = enabled("enabled")
				}
				version := p.Version
				if version == "" {
					version = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-32s %-12s %s\n", p.Name, version, state)
			}
			return nil
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a plugin's metadata and dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _ := load(opts, logger.New())

			p, ok := registry.Get(args[0])
			if !ok || !p.IsValid() {
				return fmt.Errorf("unknown plugin %q", args[0])
			}

			out := cmd.OutOrStdout()
			title := color.New(color.Bold).SprintFunc()
			fmt.Fprintf(out, "%s\n", title(p.Name))
			fmt.Fprintf(out, "  path:    %s\n", p.Path)
			if p.Version != "" {
				fmt.Fprintf(out, "  version: %s\n", p.Version)
			}
			if p.Authors.Len() > 0 {
				fmt.Fprintf(out, "  authors: %s\n", strings.Join(p.Authors.Sorted(), ", "))
			}
			if p.Tags.Len() > 0 {
				fmt.Fprintf(out, "  tags:    %s\n", strings.Join(p.Tags.Sorted(), ", "))
			}
			state := "disabled"
			if p.CurrentState {
				state = "enabled"
			}
			fmt.Fprintf(out, "  state:   %s\n", state)

			deps := p.Dependencies
			if deps.GameVersion != "" {
				fmt.Fprintf(out, "  game version: %s\n", deps.GameVersion)
			}
			if !deps.IsEmpty() {
				if deps.Required.Len() > 0 {
					fmt.Fprintf(out, "  requires:  %s\n", strings.Join(deps.Required.Sorted(), ", "))
				}
				if deps.Optional.Len() > 0 {
					fmt.Fprintf(out, "  optional:  %s\n", strings.Join(deps.Optional.Sorted(), ", "))
				}
				if deps.Conflicted.Len() > 0 {
					fmt.Fprintf(out, "  conflicts: %s\n", strings.Join(deps.Conflicted.Sorted(), ", "))
				}
			}
			if p.AboutText != "" {
				fmt.Fprintf(out, "\n%s", p.AboutText)
			}
			return nil
		},
	}
}

func newToggleCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name>...",
		Short: "Toggle plugins on or off for the next game launch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, settings := load(opts, logger.New())

			for _, name := range args {
				p, ok := registry.Get(name)
				if !ok || !p.IsValid() {
					return fmt.Errorf("unknown plugin %q", name)
				}
			}
			for _, name := range args {
				registry.Toggle(name)
			}
			if err := settings.Save(); err != nil {
				return fmt.Errorf("failed to save plugin settings: %w", err)
			}

			for _, name := range args {
				p, _ := registry.Get(name)
				state := "disabled"
				if p.CurrentState {
					state = "enabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s will be %s at the next launch\n", name, state)
			}
			return nil
		},
	}
}
