package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

// Document formats understood by FileStore.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const filePerm = 0o600

// FileStore keeps the address book in a single JSON or YAML document.
type FileStore struct {
	path   string
	format string
}

var _ ports.AddressBookStore = (*FileStore)(nil)

// NewFileStore creates a store at path. The format follows the extension:
// .yaml and .yml select YAML, anything else JSON.
func NewFileStore(path string) *FileStore {
	format := FormatJSON

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}

	return &FileStore{path: path, format: format}
}

// Path returns the document location.
func (s *FileStore) Path() string { return s.path }

// Format returns the document format.
func (s *FileStore) Format() string { return s.format }

// Load reads and validates the document.
func (s *FileStore) Load(_ context.Context) (*domain.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.NewNotFoundError("address book", s.path)
	}

	if err != nil {
		return nil, domain.NewUnavailableError("storage", err.Error())
	}

	var dtos []contactDTO
	if err := s.unmarshal(data, &dtos); err != nil {
		return nil, domain.NewUnavailableError("storage", fmt.Sprintf("decoding %s: %v", s.path, err))
	}

	book, err := hydrate(dtos)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}

	return book, nil
}

// Save writes the document atomically: a temp file in the same directory is renamed over it.
func (s *FileStore) Save(_ context.Context, book *domain.AddressBook) error {
	data, err := s.marshal(snapshot(book))
	if err != nil {
		return domain.NewUnavailableError("storage", fmt.Sprintf("encoding: %v", err))
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return domain.NewUnavailableError("storage", err.Error())
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return domain.NewUnavailableError("storage", err.Error())
	}

	if err := tmp.Close(); err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	return nil
}

// Backup renames the document to <path>.corrupt-<timestamp> so the next Save
// starts a fresh file.
func (s *FileStore) Backup(_ context.Context) (string, error) {
	target := backupPath(s.path)
	if err := os.Rename(s.path, target); err != nil {
		return "", domain.NewUnavailableError("storage", err.Error())
	}

	return target, nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) marshal(dtos []contactDTO) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(dtos)
	}

	return json.MarshalIndent(dtos, "", "  ")
}

func (s *FileStore) unmarshal(data []byte, dtos *[]contactDTO) error {
	if s.format == FormatYAML {
		return yaml.Unmarshal(data, dtos)
	}

	return json.Unmarshal(data, dtos)
}
