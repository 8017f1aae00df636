// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never storage DTOs
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
)

// AddressBookStore loads and saves a whole address book snapshot.
// There is no partial persistence: the last successful Save wins.
//
// Example usage in application layer:
//
//	book, err := store.Load(ctx)
//	if domain.IsNotFound(err) {
//	    book = domain.NewAddressBook()
//	}
type AddressBookStore interface {
	// Load reads the persisted book.
	// Returns domain.ErrNotFound if nothing was saved yet.
	// Returns domain.ErrUnavailable if the storage cannot be read or decoded.
	Load(ctx context.Context) (*domain.AddressBook, error)

	// Save replaces the persisted book with book.
	// Returns domain.ErrUnavailable if the storage cannot be written.
	Save(ctx context.Context, book *domain.AddressBook) error

	// Backup copies the persisted snapshot aside and returns where it went.
	// Used before a Save would replace a snapshot that Load could not read.
	Backup(ctx context.Context) (string, error)

	// Close releases any resources held by the store.
	Close() error
}
