package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

var (
	_ ports.HealthChecker = (*FileStore)(nil)
	_ ports.HealthChecker = (*SQLiteStore)(nil)
	_ ports.HealthChecker = (*WritableDir)(nil)
)

// Name implements ports.HealthChecker.
func (s *FileStore) Name() string { return "storage.file" }

// Check verifies that the document directory is writable and that an
// existing document decodes. A missing document is healthy.
func (s *FileStore) Check(ctx context.Context) error {
	if err := checkWritable(filepath.Dir(s.path)); err != nil {
		return err
	}

	if _, err := s.Load(ctx); err != nil && !domain.IsNotFound(err) {
		return err
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *SQLiteStore) Name() string { return "storage.sqlite" }

// Check pings the database and verifies that the stored contacts load.
// An empty database is healthy.
func (s *SQLiteStore) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	if _, err := s.Load(ctx); err != nil && !domain.IsNotFound(err) {
		return err
	}

	return nil
}

// WritableDir checks that files can be created in a directory.
// The directory is created when missing.
type WritableDir struct {
	name string
	dir  string
}

// NewWritableDir creates a checker reported under name.
func NewWritableDir(name, dir string) *WritableDir {
	return &WritableDir{name: name, dir: dir}
}

// Name implements ports.HealthChecker.
func (w *WritableDir) Name() string { return w.name }

// Check implements ports.HealthChecker.
func (w *WritableDir) Check(_ context.Context) error {
	return checkWritable(w.dir)
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, ".assistant-check-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}

	name := f.Name()
	_ = f.Close()

	return os.Remove(name)
}
