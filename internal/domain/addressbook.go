package domain

import (
	"slices"
	"strings"
)

// EmptyBookMessage is what an address book with no contacts renders as.
const EmptyBookMessage = "Address book is empty."

// AddressBook maps contact names to records. A name identifies exactly one record.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	b.records[r.Name.String()] = r
}

// Find returns the stored record for name. The returned pointer is the book's own record.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes name from the book. Deleting a missing name does nothing.
func (b *AddressBook) Delete(name string) {
	delete(b.records, name)
}

// Clear removes every record.
func (b *AddressBook) Clear() {
	clear(b.records)
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns all contact names in ascending order.
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Records returns all records in ascending name order.
func (b *AddressBook) Records() []*Record {
	names := b.Names()

	records := make([]*Record, len(names))
	for i, name := range names {
		records[i] = b.records[name]
	}

	return records
}

// String renders one record per line in ascending name order.
func (b *AddressBook) String() string {
	if len(b.records) == 0 {
		return EmptyBookMessage
	}

	lines := make([]string, 0, len(b.records))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}

	return strings.Join(lines, "\n")
}
