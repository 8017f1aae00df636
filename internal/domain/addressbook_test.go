package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBook_AddAndFind(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))

	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, "John", r.Name.String())

	_, ok = book.Find("john")
	assert.False(t, ok, "lookup is exact")
}

func TestAddressBook_AddRecordReplaces(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))
	book.AddRecord(newTestRecord(t, "John", "5555555555"))

	assert.Equal(t, 1, book.Len())

	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, "5555555555", r.PhoneList())
}

func TestAddressBook_Delete(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "Jane", "9876543210"))

	book.Delete("Jane")
	_, ok := book.Find("Jane")
	assert.False(t, ok)

	book.Delete("Jane")
	assert.Equal(t, 0, book.Len())
}

func TestAddressBook_FindReturnsSharedRecord(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))

	r, ok := book.Find("John")
	require.True(t, ok)
	require.NoError(t, r.EditPhone("1234567890", "1112223333"))

	again, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, "1112223333", again.PhoneList())
	assert.Contains(t, book.String(), "1112223333")
}

func TestAddressBook_String(t *testing.T) {
	book := NewAddressBook()
	assert.Equal(t, EmptyBookMessage, book.String())

	jane := newTestRecord(t, "Jane", "9876543210")
	require.NoError(t, jane.AddBirthday("27.10.2001"))

	book.AddRecord(newTestRecord(t, "John", "1234567890", "5555555555"))
	book.AddRecord(jane)
	book.AddRecord(newTestRecord(t, "Adam"))

	expected := "Contact name: Adam, phones: \n" +
		"Contact name: Jane, phones: 9876543210, Birthday 27.10.2001\n" +
		"Contact name: John, phones: 1234567890; 5555555555"

	assert.Equal(t, expected, book.String())
	assert.Equal(t, book.String(), book.String(), "rendering is idempotent")
}

func TestAddressBook_Clear(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "John"))
	book.AddRecord(newTestRecord(t, "Jane"))

	book.Clear()

	assert.Equal(t, 0, book.Len())
	assert.Empty(t, book.Names())
}

func TestAddressBook_Records(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "b"))
	book.AddRecord(newTestRecord(t, "a"))
	book.AddRecord(newTestRecord(t, "C"))

	assert.Equal(t, []string{"C", "a", "b"}, book.Names())

	records := book.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "C", records[0].Name.String())
}
