package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

func TestFileStore_Check(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "missing document", content: "", wantErr: false},
		{name: "valid document", content: `[{"name": "John", "phones": ["1234567890"]}]`, wantErr: false},
		{name: "corrupt document", content: "{not json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			store := NewFileStore(path)
			assert.Equal(t, "storage.file", store.Name())

			err := store.Check(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLiteStore_Check(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)

	assert.Equal(t, "storage.sqlite", store.Name())
	assert.NoError(t, store.Check(ctx))

	require.NoError(t, store.Close())
	assert.Error(t, store.Check(ctx))
}

func TestWritableDir_Check(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	checker := NewWritableDir("output.logs", dir)
	assert.Equal(t, "output.logs", checker.Name())
	require.NoError(t, checker.Check(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWritableDir_CheckFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := NewWritableDir("output.metrics", file).Check(context.Background())
	assert.Error(t, err)
}

func TestHealthRegistry_WithStores(t *testing.T) {
	dir := t.TempDir()
	registry := ports.NewHealthRegistry()

	require.NoError(t, registry.Register(NewFileStore(filepath.Join(dir, "book.json"))))
	require.NoError(t, registry.Register(NewWritableDir("output.logs", filepath.Join(dir, "logs"))))

	result := registry.CheckAll(context.Background())
	assert.Equal(t, ports.HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, "storage.file", result.Checks[0].Name)
}

func TestSQLiteStore_CheckRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.db.ExecContext(ctx, `INSERT INTO contacts (name, birthday) VALUES ('Bob', '')`)
	require.NoError(t, err)
	_, err = store.db.ExecContext(ctx, `INSERT INTO phones (contact, position, number) VALUES ('Bob', 0, '123')`)
	require.NoError(t, err)

	assert.Error(t, store.Check(ctx))
}
