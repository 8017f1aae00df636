// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Own the address book for the lifetime of one session
//   - Coordinate between domain and persistence
//   - Handle cross-cutting concerns (logging)
//
// What does NOT belong here:
//   - Terminal specifics (that's adapters/cli)
//   - Encoding and queries (that's adapters/storage)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/platform/logging"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

// Session loads the address book once at startup and saves it once at exit.
// There is no incremental persistence: the last successful Close wins.
//
// Example usage:
//
//	session := app.NewSession(store, &app.SessionConfig{Logger: logger})
//	book := session.Open(ctx)
//	defer func() {
//	    if err := session.Close(ctx); err != nil {
//	        fmt.Println("Could not save contacts:", err)
//	    }
//	}()
type Session struct {
	store  ports.AddressBookStore
	logger *slog.Logger
	book   *domain.AddressBook

	// unreadable is set when Open fell back to an empty book after a load
	// error other than a missing snapshot.
	unreadable bool
}

// SessionConfig holds optional configuration for the session.
type SessionConfig struct {
	Logger *slog.Logger
}

// NewSession creates a session backed by store.
func NewSession(store ports.AddressBookStore, cfg *SessionConfig) *Session {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &Session{
		store:  store,
		logger: logger.With(slog.String("component", "app.Session")),
	}
}

// Open loads the persisted book. It never fails: a missing snapshot or any
// load error yields an empty book, and the error is logged. After a load
// error the unreadable snapshot is backed up by Close before it is replaced.
func (s *Session) Open(ctx context.Context) *domain.AddressBook {
	logger := s.loggerFrom(ctx)

	book, err := s.store.Load(ctx)
	switch {
	case err == nil:
		logger.InfoContext(ctx, "address book loaded", slog.Int("contacts", book.Len()))
	case domain.IsNotFound(err):
		logger.InfoContext(ctx, "no saved address book, starting empty")
		book = domain.NewAddressBook()
	default:
		logger.WarnContext(ctx, "could not load address book, starting empty", slog.String("error", err.Error()))
		book = domain.NewAddressBook()
		s.unreadable = true
	}

	s.book = book

	return book
}

// Book returns the book opened by Open, or nil before Open.
func (s *Session) Book() *domain.AddressBook {
	return s.book
}

// Close saves the book opened by Open. A snapshot that Open could not read
// is backed up first; when the backup fails nothing is saved.
func (s *Session) Close(ctx context.Context) error {
	if s.book == nil {
		return nil
	}

	if s.unreadable {
		location, err := s.store.Backup(ctx)
		if err != nil {
			return fmt.Errorf("keeping unreadable address book: %w", err)
		}

		s.loggerFrom(ctx).WarnContext(ctx, "unreadable address book backed up", slog.String("location", location))
		s.unreadable = false
	}

	if err := s.store.Save(ctx, s.book); err != nil {
		return fmt.Errorf("saving address book: %w", err)
	}

	s.loggerFrom(ctx).InfoContext(ctx, "address book saved", slog.Int("contacts", s.book.Len()))

	return nil
}

func (s *Session) loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := logging.LoggerFromContext(ctx); ok {
		return logger
	}

	return s.logger
}
