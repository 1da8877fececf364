package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/ansilog/internal/config"
	"github.com/xdg/ansilog/internal/term"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage ansilog's configuration.

The configuration file is stored at ~/.config/ansilog/config.yaml
(or $XDG_CONFIG_HOME/ansilog/config.yaml if XDG_CONFIG_HOME is set).
Use --config to point at another file.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective config",
		Long: `Print the effective configuration as YAML, after applying the
environment and flags on top of the config file.

If no config file exists, shows the default configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to serialize config: %w", err)
			}
			term.Print(string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			term.Print(a.configPath() + "\n")
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Long: `Create a commented default configuration file if it doesn't exist.

If the file already exists, this command does nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()
			created, err := config.WriteDefault(path)
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			if created {
				term.Print("Created " + path + "\n")
			} else {
				term.Print("Config already exists at " + path + "\n")
			}
			return nil
		},
	})

	return configCmd
}

// configPath returns the --config value or the default path.
func (a *app) configPath() string {
	if p := a.v.GetString("config"); p != "" {
		return config.ExpandHome(p)
	}
	return config.Path()
}
