package domain

import (
	"slices"
	"strings"
)

// Record is one contact: a name, phones in insertion order and an optional birthday.
// Records handed out by an AddressBook are shared; edits are visible through the book.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord creates a record with a name and nothing else.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	return &Record{Name: n}, nil
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}

	r.Phones = append(r.Phones, phone)

	return nil
}

// RemovePhone removes the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}

	i := slices.Index(r.Phones, phone)
	if i < 0 {
		return NewPhoneNotFoundError(raw)
	}

	r.Phones = slices.Delete(r.Phones, i, i+1)

	return nil
}

// FindPhone returns the first phone whose digits equal number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	i := r.phoneIndex(number)
	if i < 0 {
		return Phone{}, false
	}

	return r.Phones[i], true
}

// EditPhone replaces the first phone equal to oldNumber with newNumber.
// The phone list is left untouched on any error.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	i := r.phoneIndex(oldNumber)
	if i < 0 {
		return NewPhoneNotFoundError(oldNumber)
	}

	phone, err := NewPhone(newNumber)
	if err != nil {
		return err
	}

	r.Phones[i] = phone

	return nil
}

// AddBirthday validates raw and overwrites the current birthday.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}

	r.Birthday = &birthday

	return nil
}

// PhoneList joins the phones with "; " in storage order.
func (r *Record) PhoneList() string {
	values := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		values[i] = p.String()
	}

	return strings.Join(values, "; ")
}

// String renders "Contact name: <name>, phones: <p1>; <p2>[, Birthday <date>]".
func (r *Record) String() string {
	var b strings.Builder

	b.WriteString("Contact name: ")
	b.WriteString(r.Name.String())
	b.WriteString(", phones: ")
	b.WriteString(r.PhoneList())

	if r.Birthday != nil {
		b.WriteString(", Birthday ")
		b.WriteString(r.Birthday.String())
	}

	return b.String()
}

func (r *Record) phoneIndex(number string) int {
	return slices.IndexFunc(r.Phones, func(p Phone) bool { return p.value == number })
}
