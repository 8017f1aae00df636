package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

// sampleBook returns John (two phones, birthday) and Jane (one phone).
func sampleBook(t *testing.T) *domain.AddressBook {
	t.Helper()

	john, err := domain.NewRecord("John")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("1234567890"))
	require.NoError(t, john.AddPhone("5555555555"))
	require.NoError(t, john.AddBirthday("25.10.2000"))

	jane, err := domain.NewRecord("Jane")
	require.NoError(t, err)
	require.NoError(t, jane.AddPhone("9876543210"))

	book := domain.NewAddressBook()
	book.AddRecord(john)
	book.AddRecord(jane)

	return book
}

func TestStores_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sqliteStore, err := NewSQLiteStore(ctx, filepath.Join(dir, "book.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	stores := map[string]ports.AddressBookStore{
		"json":   NewFileStore(filepath.Join(dir, "book.json")),
		"yaml":   NewFileStore(filepath.Join(dir, "nested", "book.yaml")),
		"sqlite": sqliteStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			book := sampleBook(t)

			require.NoError(t, store.Save(ctx, book))

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, book.String(), loaded.String())

			john, ok := loaded.Find("John")
			require.True(t, ok)
			assert.Equal(t, "1234567890; 5555555555", john.PhoneList())
		})
	}
}

func TestStores_LoadMissing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := NewFileStore(filepath.Join(dir, "absent.json")).Load(ctx)
	assert.True(t, domain.IsNotFound(err), "unexpected error: %v", err)

	sqliteStore, err := NewSQLiteStore(ctx, filepath.Join(dir, "empty.db"))
	require.NoError(t, err)
	defer func() { _ = sqliteStore.Close() }()

	_, err = sqliteStore.Load(ctx)
	assert.True(t, domain.IsNotFound(err), "unexpected error: %v", err)
}

func TestSQLiteStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	book := sampleBook(t)
	require.NoError(t, store.Save(ctx, book))

	book.Delete("Jane")
	require.NoError(t, store.Save(ctx, book))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"John"}, loaded.Names())
}

func TestFileStore_Format(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "book.json", expected: FormatJSON},
		{path: "book.yaml", expected: FormatYAML},
		{path: "book.YML", expected: FormatYAML},
		{path: "book", expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFileStore(tt.path).Format())
		})
	}
}

func TestFileStore_LoadRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "unexpected error: %v", err)
}

func TestFileStore_LoadRejectsInvalidContact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	doc := `[{"name": "John", "phones": ["12345"]}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "unexpected error: %v", err)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "book.json"))

	require.NoError(t, store.Save(context.Background(), sampleBook(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "book.json", entries[0].Name())
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := New(ctx, &config.StorageConfig{Driver: DriverFile, Path: filepath.Join(dir, "book.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	store, err = New(ctx, &config.StorageConfig{Driver: DriverSQLite, Path: filepath.Join(dir, "book.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	_, err = New(ctx, &config.StorageConfig{Driver: "redis"})
	require.Error(t, err)
}

func TestFileStore_Backup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	doc := `[{"name":"Ann","phones":["1234567890"]},{"name":"Bob","phones":["123"]}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	store := NewFileStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.Error(t, err)

	backup, err := store.Backup(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(backup), "book.json.corrupt-"), backup)

	kept, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, doc, string(kept))

	require.NoError(t, store.Save(ctx, domain.NewAddressBook()))

	kept, err = os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, doc, string(kept), "saving must not touch the backup")
}

func TestFileStore_BackupMissingDocument(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json")).Backup(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "unexpected error: %v", err)
}

func TestSQLiteStore_Backup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Save(ctx, sampleBook(t)))

	backup, err := store.Backup(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(backup), "book.db.corrupt-"), backup)

	copied, err := NewSQLiteStore(ctx, backup)
	require.NoError(t, err)
	defer func() { _ = copied.Close() }()

	loaded, err := copied.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane", "John"}, loaded.Names())
}

func TestSQLiteStore_BackupInMemory(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Backup(ctx)
	assert.True(t, domain.IsUnavailable(err), "unexpected error: %v", err)
}
