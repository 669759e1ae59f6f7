// Package cli provides the command-line interface for hashbridge.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/safedep/dry/log"
	"github.com/safedep/hashbridge/bridge"
	"github.com/safedep/hashbridge/config"
	"github.com/safedep/hashbridge/host"
	"github.com/safedep/hashbridge/internal/version"
	"github.com/safedep/hashbridge/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Module    *host.Module
	Presenter tui.Presenter
}

// NewApp creates a new App with the given configuration, loading the bridge
// module and a presenter that writes to out.
func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	module, err := bridge.Load()
	if err != nil {
		log.Errorf("bridge module failed to load: %v", err)
		return nil, ErrRegistration(err)
	}

	presenter := tui.NewPresenter(tui.ParseFormat(string(cfg.Display.Format)), tui.PresenterOptions{
		Writer:    out,
		UseColors: useColors(cfg, out),
		Verbose:   globalFlags.Verbose,
	})

	return &App{
		Config:    cfg,
		Module:    module,
		Presenter: presenter,
	}, nil
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Format     string
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashbridge",
		Short: "Call shared digest functions through the host bridge",
		Long: `Hashbridge loads the bridge module and calls its exported digest
functions by name, the same way a host runtime would.

Use "hashbridge exports" to list the functions the module registers.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("HASHBRIDGE_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Format, "format", "", "output format: text, json (default from config)")

	rootCmd.AddCommand(
		NewCallCmd(),
		NewHashCmd(),
		NewExportsCmd(),
		NewVerifyCmd(),
		NewInvokeCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Command output goes through the presenter; keep the logger off stdout.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("hashbridge", "cli")
}

// loadConfig loads configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load configuration", err)
	}

	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	if globalFlags.Format != "" {
		switch config.OutputFormat(globalFlags.Format) {
		case config.FormatText, config.FormatJSON:
			cfg.Display.Format = config.OutputFormat(globalFlags.Format)
		default:
			return nil, ErrConfig("invalid --format", fmt.Errorf("%q (must be text or json)", globalFlags.Format))
		}
	}

	return cfg, nil
}

// loadApp loads the application with configuration, writing to the command's output.
func loadApp(cmd *cobra.Command) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return NewApp(cfg, cmd.OutOrStdout())
}

// useColors resolves the color mode against the actual output writer.
func useColors(cfg *config.Config, out io.Writer) bool {
	return cfg.ShouldUseColors(tui.IsWriterTerminal(out))
}
