package cli

import (
	"fmt"

	"github.com/safedep/hashbridge/config"
	"github.com/safedep/hashbridge/tui"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Values are validated before they are written to the config file.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

// configPath returns the config file the config subcommands operate on.
func configPath() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return config.ResolvePaths().ConfigFile
}

func newConfigManager() (*config.Manager, error) {
	mgr, err := config.NewManager(configPath())
	if err != nil {
		return nil, ErrConfig("failed to open configuration", err)
	}
	return mgr, nil
}

// messagePresenter renders status messages for config subcommands. It does not
// load the config file, so that a broken file can still be repaired.
func messagePresenter(cmd *cobra.Command) tui.Presenter {
	return tui.NewPresenter(tui.ParseFormat(globalFlags.Format), tui.PresenterOptions{
		Writer: cmd.OutOrStdout(),
	})
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			mgr, err := newConfigManager()
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(tui.ParseFormat(string(cfg.Display.Format)), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: useColors(cfg, cmd.OutOrStdout()),
			})

			return presenter.RenderConfig(&tui.ConfigView{
				Location: mgr.ConfigPath(),
				Values:   mgr.AllSettings(),
			})
		},
	}

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			mgr, err := newConfigManager()
			if err != nil {
				return err
			}

			if !mgr.HasKey(key) {
				return ErrConfig("unknown key", fmt.Errorf("%s", key))
			}

			fmt.Fprintln(cmd.OutOrStdout(), mgr.Get(key))
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := config.ParseValue(args[1])

			mgr, err := newConfigManager()
			if err != nil {
				return err
			}

			if err := mgr.Set(key, value); err != nil {
				return ErrConfig("failed to set "+key, err)
			}

			if globalFlags.Quiet {
				return nil
			}
			return messagePresenter(cmd).RenderMessage(fmt.Sprintf("Set %s = %v", key, value))
		},
	}

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := newConfigManager()
			if err != nil {
				return err
			}

			if err := mgr.Reset(); err != nil {
				return ErrConfig("failed to reset configuration", err)
			}

			if globalFlags.Quiet {
				return nil
			}
			return messagePresenter(cmd).RenderMessage(
				fmt.Sprintf("Configuration reset to defaults (%s removed)", mgr.ConfigPath()))
		},
	}

	return cmd
}
