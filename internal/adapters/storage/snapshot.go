// Package storage implements ports.AddressBookStore on a document file or a sqlite database.
//
// Both stores persist the same snapshot shape: one contactDTO per record, sorted by name.
// DTOs are translated back into domain records through the domain constructors, so a
// tampered snapshot is rejected instead of producing an invalid record.
package storage

import (
	"fmt"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
)

// contactDTO is the persisted form of a domain.Record.
type contactDTO struct {
	Name     string   `json:"name"               yaml:"name"`
	Phones   []string `json:"phones"             yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// translator converts a persisted DTO into a domain value, validating it on the way.
type translator[External any, Domain any] func(ext *External) (*Domain, error)

// translateSlice applies translate to every item, stopping at the first failure.
func translateSlice[E any, D any](items []E, translate translator[E, D]) ([]*D, error) {
	result := make([]*D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// toRecord rebuilds a record through the validating constructors.
func toRecord(dto *contactDTO) (*domain.Record, error) {
	r, err := domain.NewRecord(dto.Name)
	if err != nil {
		return nil, err
	}

	for _, p := range dto.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}

	if dto.Birthday != "" {
		if err := r.AddBirthday(dto.Birthday); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// fromRecord flattens a record into its DTO.
func fromRecord(r *domain.Record) contactDTO {
	dto := contactDTO{
		Name:   r.Name.String(),
		Phones: make([]string, len(r.Phones)),
	}

	for i, p := range r.Phones {
		dto.Phones[i] = p.String()
	}

	if r.Birthday != nil {
		dto.Birthday = r.Birthday.String()
	}

	return dto
}

// snapshot flattens book into DTOs in ascending name order.
func snapshot(book *domain.AddressBook) []contactDTO {
	records := book.Records()

	dtos := make([]contactDTO, len(records))
	for i, r := range records {
		dtos[i] = fromRecord(r)
	}

	return dtos
}

// hydrate builds a book from DTOs. Later duplicates of a name replace earlier ones.
func hydrate(dtos []contactDTO) (*domain.AddressBook, error) {
	records, err := translateSlice(dtos, toRecord)
	if err != nil {
		return nil, err
	}

	book := domain.NewAddressBook()
	for _, r := range records {
		book.AddRecord(r)
	}

	return book, nil
}
