package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

// Storage drivers accepted by New.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// New opens the store selected by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig) (ports.AddressBookStore, error) {
	switch cfg.Driver {
	case DriverFile, "":
		return NewFileStore(cfg.Path), nil
	case DriverSQLite:
		store, err := NewSQLiteStore(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}

		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// backupPath names the copy kept when a snapshot could not be read.
func backupPath(path string) string {
	return path + ".corrupt-" + time.Now().UTC().Format("20060102T150405")
}
