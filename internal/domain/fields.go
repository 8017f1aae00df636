package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the only accepted and rendered birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Validation rules, expressed as validator tags.
const (
	phoneRule    = "len=10,number"
	birthdayRule = "datetime=" + BirthdayLayout
)

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Name is a contact name. It is never empty.
type Name struct {
	value string
}

// NewName trims raw and rejects empty names.
func NewName(raw string) (Name, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Name{}, NewValidationError("name", "cannot be empty")
	}

	return Name{value: value}, nil
}

// String returns the canonical name.
func (n Name) String() string { return n.value }

// Phone is a phone number of exactly 10 ASCII digits.
// Two phones are equal when their digits are equal, so == works.
type Phone struct {
	value string
}

// NewPhone validates raw as a 10-digit phone number.
func NewPhone(raw string) (Phone, error) {
	if err := validate.Var(raw, phoneRule); err != nil {
		return Phone{}, NewValidationErrorWithValue("phone", "the number must contain 10 digits", raw)
	}

	return Phone{value: raw}, nil
}

// String returns the digits.
func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw as DD.MM.YYYY. Impossible dates such as 30.02.2000 are rejected.
func NewBirthday(raw string) (Birthday, error) {
	if err := validate.Var(raw, birthdayRule); err != nil {
		return Birthday{}, NewValidationErrorWithValue("birthday", "use the DD.MM.YYYY format", raw)
	}

	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, NewValidationErrorWithValue("birthday", err.Error(), raw)
	}

	return Birthday{date: date}, nil
}

// Month returns the birth month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of month.
func (b Birthday) Day() int { return b.date.Day() }

// Date returns the full birth date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Equal reports whether both birthdays fall on the same date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
