package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/assistant-bot/internal/adapters/storage"
	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

const doctorTimeout = 5 * time.Second

var errUnhealthy = errors.New("one or more checks failed")

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the configured storage and output paths are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), doctorTimeout)
			defer cancel()

			return runDoctor(ctx, cmd, opts)
		},
	}
}

func runDoctor(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	registry, err := doctorRegistry(cfg, store)
	if err != nil {
		return err
	}

	result := registry.CheckAll(ctx)

	out := cmd.OutOrStdout()
	for _, check := range result.Checks {
		line := fmt.Sprintf("%-16s %-9s %s", check.Name, check.Status, check.Duration.Round(time.Microsecond))
		if check.Message != "" {
			line += "  " + check.Message
		}
		fmt.Fprintln(out, line)
	}

	if result.Status != ports.HealthStatusHealthy {
		return errUnhealthy
	}

	return nil
}

func doctorRegistry(cfg *config.Config, store ports.AddressBookStore) (*ports.HealthRegistry, error) {
	registry := ports.NewHealthRegistry()

	checkers := make([]ports.HealthChecker, 0, 3)
	if checker, ok := store.(ports.HealthChecker); ok {
		checkers = append(checkers, checker)
	}
	if cfg.Log.File.Enabled {
		checkers = append(checkers, storage.NewWritableDir("output.log", filepath.Dir(cfg.Log.File.Path)))
	}
	if cfg.Metrics.Textfile != "" {
		checkers = append(checkers, storage.NewWritableDir("output.metrics", filepath.Dir(cfg.Metrics.Textfile)))
	}

	for _, checker := range checkers {
		if err := registry.Register(checker); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
