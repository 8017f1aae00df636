package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

const schema = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS contacts (
    name     TEXT PRIMARY KEY,
    birthday TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS phones (
    contact  TEXT    NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    number   TEXT    NOT NULL,
    PRIMARY KEY (contact, position)
);
`

// SQLiteStore keeps the address book in a sqlite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ ports.AddressBookStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and ensures the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// One connection keeps PRAGMA foreign_keys and :memory: databases consistent.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: path}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Load reads every contact with its phones in position order.
// An empty database is reported as domain.ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.AddressBook, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT c.name, c.birthday, p.number
FROM contacts c
LEFT JOIN phones p ON p.contact = c.name
ORDER BY c.name, p.position`)
	if err != nil {
		return nil, domain.NewUnavailableError("storage", err.Error())
	}
	defer func() { _ = rows.Close() }()

	var dtos []contactDTO

	for rows.Next() {
		var (
			name, birthday string
			number         sql.NullString
		)

		if err := rows.Scan(&name, &birthday, &number); err != nil {
			return nil, domain.NewUnavailableError("storage", err.Error())
		}

		if len(dtos) == 0 || dtos[len(dtos)-1].Name != name {
			dtos = append(dtos, contactDTO{Name: name, Birthday: birthday})
		}

		if number.Valid {
			last := &dtos[len(dtos)-1]
			last.Phones = append(last.Phones, number.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewUnavailableError("storage", err.Error())
	}

	if len(dtos) == 0 {
		return nil, domain.NewNotFoundError("address book", "sqlite")
	}

	return hydrate(dtos)
}

// Save replaces all rows inside a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, book *domain.AddressBook) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = replaceAll(ctx, tx, snapshot(book)); err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	if err = tx.Commit(); err != nil {
		return domain.NewUnavailableError("storage", err.Error())
	}

	return nil
}

func replaceAll(ctx context.Context, tx *sql.Tx, dtos []contactDTO) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	for _, dto := range dtos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (name, birthday) VALUES (?, ?)`, dto.Name, dto.Birthday); err != nil {
			return fmt.Errorf("inserting contact %q: %w", dto.Name, err)
		}

		for i, number := range dto.Phones {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO phones (contact, position, number) VALUES (?, ?, ?)`, dto.Name, i, number); err != nil {
				return fmt.Errorf("inserting phone for %q: %w", dto.Name, err)
			}
		}
	}

	return nil
}

// Backup copies the database to <path>.corrupt-<timestamp> with VACUUM INTO.
// In-memory databases have nothing to keep and are rejected.
func (s *SQLiteStore) Backup(ctx context.Context) (string, error) {
	if s.path == "" || strings.HasPrefix(s.path, ":memory:") {
		return "", domain.NewUnavailableError("storage", "in-memory database cannot be backed up")
	}

	target := backupPath(s.path)
	query := "VACUUM INTO '" + strings.ReplaceAll(target, "'", "''") + "'"
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return "", domain.NewUnavailableError("storage", fmt.Sprintf("backup: %v", err))
	}

	return target, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }
