//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/assistant-bot/internal/adapters/storage"
	"github.com/jsamuelsen/assistant-bot/internal/app"
	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
)

// configDir is the repository's shipped configuration.
const configDir = "../../configs"

// TestConfig_ShippedProfiles verifies every shipped profile loads and validates.
func TestConfig_ShippedProfiles(t *testing.T) {
	tests := []struct {
		profile        string
		expectedDriver string
		expectedFormat string
	}{
		{profile: "local", expectedDriver: storage.DriverFile, expectedFormat: "pretty"},
		{profile: "prod", expectedDriver: storage.DriverSQLite, expectedFormat: "json"},
		{profile: "missing-profile", expectedDriver: storage.DriverFile, expectedFormat: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			cfg, err := config.Load(tt.profile, config.WithDir(configDir))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, tt.expectedDriver, cfg.Storage.Driver)
			assert.Equal(t, tt.expectedFormat, cfg.Log.Format)
			assert.True(t, cfg.Book.StrictPhoneEdits)
		})
	}
}

// TestConfig_EnvironmentSelectsStorage verifies APP_ variables reach the store.
func TestConfig_EnvironmentSelectsStorage(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "book.db")
	t.Setenv("APP_STORAGE_DRIVER", "sqlite")
	t.Setenv("APP_STORAGE_PATH", dataPath)

	cfg, err := config.Load("local", config.WithDir(configDir))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	store, err := storage.New(context.Background(), &cfg.Storage)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok := store.(*storage.SQLiteStore)
	assert.True(t, ok, "expected sqlite store, got %T", store)
}

// TestConfig_SessionRoundTrip runs a session on the configured store twice.
func TestConfig_SessionRoundTrip(t *testing.T) {
	for _, driver := range []string{storage.DriverFile, storage.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg, err := config.Load("local",
				config.WithDir(configDir),
				config.WithOverrides(map[string]any{
					"storage.driver": driver,
					"storage.path":   filepath.Join(t.TempDir(), "book"),
				}),
			)
			require.NoError(t, err)

			ctx := context.Background()
			store, err := storage.New(ctx, &cfg.Storage)
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			first := app.NewSession(store, nil)
			book := first.Open(ctx)
			r, err := newRecord("John", "1234567890")
			require.NoError(t, err)
			book.AddRecord(r)
			require.NoError(t, first.Close(ctx))

			second := app.NewSession(store, nil)
			reloaded := second.Open(ctx)
			assert.Equal(t, []string{"John"}, reloaded.Names())
		})
	}
}

// TestConfig_InvalidConfiguration verifies bad values fail validation.
func TestConfig_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		errSubstr string
	}{
		{
			name:      "unknown driver",
			overrides: map[string]any{"storage.driver": "postgres"},
			errSubstr: "storage.driver",
		},
		{
			name:      "unknown log level",
			overrides: map[string]any{"log.level": "verbose"},
			errSubstr: "log.level",
		},
		{
			name:      "metrics textfile without .prom suffix",
			overrides: map[string]any{"metrics.textfile": "/tmp/metrics.txt"},
			errSubstr: "metrics.textfile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("local", config.WithDir(configDir), config.WithOverrides(tt.overrides))
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
