package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/assistant-bot/internal/adapters/cli"
	"github.com/jsamuelsen/assistant-bot/internal/adapters/storage"
	"github.com/jsamuelsen/assistant-bot/internal/app"
	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
	"github.com/jsamuelsen/assistant-bot/internal/platform/logging"
	"github.com/jsamuelsen/assistant-bot/internal/platform/metrics"
	"github.com/jsamuelsen/assistant-bot/internal/platform/telemetry"
)

// rootOptions holds the command-line flags.
type rootOptions struct {
	configFile string
	configDir  string
	profile    string
	dataPath   string
	driver     string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Keep contacts, phones and birthdays from the terminal",
		Long: `assistant is an interactive contact book.

Type commands such as "add John 1234567890" or "birthdays" at the prompt.
Contacts are loaded at startup and saved when you type "exit" or "close".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runAssistant(ctx, cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file loaded after the profile file")
	flags.StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir, "Directory holding base.yaml and profile files")
	flags.StringVar(&opts.profile, "profile", defaultProfile(), "Config profile (local, dev, test, prod)")
	flags.StringVar(&opts.dataPath, "data", "", "Address book location (overrides storage.path)")
	flags.StringVar(&opts.driver, "driver", "", "Storage driver: file or sqlite (overrides storage.driver)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides log.level)")

	cmd.AddCommand(newVersionCommand(), newDoctorCommand(opts))

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assistant %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}

func defaultProfile() string {
	if profile := os.Getenv("APP_ENVIRONMENT"); profile != "" {
		return profile
	}

	return "local"
}

// overrides maps the flags that were set onto config keys.
func (o *rootOptions) overrides(cmd *cobra.Command) map[string]any {
	values := map[string]any{}

	if cmd.Flags().Changed("data") {
		values["storage.path"] = o.dataPath
	}
	if cmd.Flags().Changed("driver") {
		values["storage.driver"] = o.driver
	}
	if cmd.Flags().Changed("log-level") {
		values["log.level"] = o.logLevel
	}

	return values
}

// loadConfig loads the selected profile with flag overrides and validates it.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loadOpts := []config.Option{
		config.WithDir(o.configDir),
		config.WithOverrides(o.overrides(cmd)),
	}
	if o.configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(o.configFile))
	}

	cfg, err := config.Load(o.profile, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func runAssistant(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()

	// 1. Load and validate configuration (fail fast)
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	// 2. Initialize logging
	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, cmd.ErrOrStderr())
	logging.SetDefault(logger)

	logger.Info("starting assistant",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	// 3. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	commandTelemetry, err := telemetry.NewCommandMetrics()
	if err != nil {
		logger.Warn("command instruments unavailable", slog.Any("error", err))
	}

	// 4. Open storage and load the book
	store, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing storage", slog.Any("error", closeErr))
		}
	}()

	session := app.NewSession(store, &app.SessionConfig{Logger: logger})
	book := session.Open(ctx)

	// 5. Wire the command router
	commands := metrics.NewCommands()
	router := cli.NewRouter(
		cli.WithLogger(logger),
		cli.WithMetrics(commands),
		cli.WithTelemetry(commandTelemetry),
	)
	cli.NewHandlers(cli.WithStrictPhoneEdits(cfg.Book.StrictPhoneEdits)).Register(router)

	// 6. Run the loop; a signal closes the input so a blocked read returns.
	in := cmd.InOrStdin()
	stopClosing := context.AfterFunc(ctx, func() {
		if closer, ok := in.(io.Closer); ok {
			_ = closer.Close()
		}
	})
	defer stopClosing()

	sessionCtx := logging.WithSessionID(logging.WithContext(ctx, logger), uuid.NewString())

	runErr := cli.NewREPL(router, in, out).Run(sessionCtx, book)
	if runErr != nil && ctx.Err() == nil {
		logger.Error("reading commands", slog.Any("error", runErr))
	}

	// 7. Save once, even after a signal
	if err := session.Close(context.WithoutCancel(sessionCtx)); err != nil {
		fmt.Fprintf(out, "Could not save contacts: %v\n", err)
	}

	if cfg.Metrics.Textfile != "" {
		if err := commands.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("writing metrics textfile", slog.Any("error", err))
		}
	}

	logger.Info("assistant stopped")

	return nil
}
