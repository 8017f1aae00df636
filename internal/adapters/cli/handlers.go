package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
)

// Replies for successful commands.
const (
	GreetingMessage         = "How can I help you?"
	ContactAddedMessage     = "Contact added."
	ContactUpdatedMessage   = "Contact updated."
	ContactDeletedMessage   = "Contact deleted."
	PhoneRemovedMessage     = "Phone removed."
	BirthdayAddedMessage    = "Birthday added."
	GoodbyeMessage          = "Good bye!"
	ClearScreenSequence     = "\033[H\033[2J"
	noPhonesMessageFormat   = "%s has no phones."
	noBirthdayMessageFormat = "%s has no birthday set."
	contactLineFormat       = "%s: %s"
)

// Prompts returned when a command gets too few arguments.
const (
	addPrompt         = "Give me name and phone please."
	changePrompt      = "Give me name, old phone and new phone please."
	addBirthdayPrompt = "Give me name and birthday please."
	removePhonePrompt = "Give me name and phone please."
	namePrompt        = DefaultArityPrompt
)

// Handlers implements every command of the assistant.
type Handlers struct {
	strict bool
	now    func() time.Time
}

// HandlersOption configures Handlers.
type HandlersOption func(*Handlers)

// WithStrictPhoneEdits controls whether change and remove-phone report a
// phone that is not on the contact. When false they silently succeed.
func WithStrictPhoneEdits(strict bool) HandlersOption {
	return func(h *Handlers) { h.strict = strict }
}

// WithClock replaces time.Now for the birthdays command.
func WithClock(now func() time.Time) HandlersOption {
	return func(h *Handlers) { h.now = now }
}

// NewHandlers creates handlers in strict mode using the wall clock.
func NewHandlers(opts ...HandlersOption) *Handlers {
	h := &Handlers{strict: true, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Register binds every command verb on r.
func (h *Handlers) Register(r *Router) {
	r.Register("hello", h.Hello)
	r.Register("add", h.Add)
	r.Register("change", h.Change)
	r.Register("phone", h.Phone)
	r.Register("all", h.All)
	r.Register("add-birthday", h.AddBirthday)
	r.Register("show-birthday", h.ShowBirthday)
	r.Register("birthdays", h.Birthdays)
	r.Register("delete", h.Delete)
	r.Register("remove-phone", h.RemovePhone)
	r.Register("clear", h.Clear)
	r.RegisterExit("exit", h.Exit)
	r.RegisterExit("close", h.Exit)
}

// Hello greets the user.
func (h *Handlers) Hello(_ context.Context, _ []string, _ *domain.AddressBook) (string, error) {
	return GreetingMessage, nil
}

// Add creates a contact with a phone, or appends the phone to an existing one.
func (h *Handlers) Add(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("add", args, 2, addPrompt); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if record, ok := book.Find(name); ok {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return ContactUpdatedMessage, nil
	}

	record, err := domain.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	book.AddRecord(record)

	return ContactAddedMessage, nil
}

// Change replaces one phone of a contact.
func (h *Handlers) Change(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("change", args, 3, changePrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}

	err = record.EditPhone(args[1], args[2])
	if err != nil && (h.strict || !domain.IsNotFound(err)) {
		return "", err
	}

	return ContactUpdatedMessage, nil
}

// Phone lists the phones of a contact.
func (h *Handlers) Phone(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("phone", args, 1, namePrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}

	if len(record.Phones) == 0 {
		return fmt.Sprintf(noPhonesMessageFormat, record.Name), nil
	}

	return fmt.Sprintf(contactLineFormat, record.Name, record.PhoneList()), nil
}

// All renders the whole book.
func (h *Handlers) All(_ context.Context, _ []string, book *domain.AddressBook) (string, error) {
	return book.String(), nil
}

// AddBirthday sets or overwrites the birthday of a contact.
func (h *Handlers) AddBirthday(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("add-birthday", args, 2, addBirthdayPrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}

	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}

	return BirthdayAddedMessage, nil
}

// ShowBirthday prints the birthday of a contact.
func (h *Handlers) ShowBirthday(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("show-birthday", args, 1, namePrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}

	if record.Birthday == nil {
		return fmt.Sprintf(noBirthdayMessageFormat, record.Name), nil
	}

	return fmt.Sprintf(contactLineFormat, record.Name, record.Birthday), nil
}

// Birthdays lists the birthdays of the coming week grouped by congratulation day.
func (h *Handlers) Birthdays(_ context.Context, _ []string, book *domain.AddressBook) (string, error) {
	return domain.FormatBirthdays(book.UpcomingBirthdays(h.now())), nil
}

// Delete removes a contact.
func (h *Handlers) Delete(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("delete", args, 1, namePrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	book.Delete(record.Name.String())

	return ContactDeletedMessage, nil
}

// RemovePhone removes one phone from a contact.
func (h *Handlers) RemovePhone(_ context.Context, args []string, book *domain.AddressBook) (string, error) {
	if err := requireArgs("remove-phone", args, 2, removePhonePrompt); err != nil {
		return "", err
	}

	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}

	if err := record.RemovePhone(args[1]); err != nil && h.strict {
		return "", err
	}

	return PhoneRemovedMessage, nil
}

// Clear clears the terminal. The book is untouched.
func (h *Handlers) Clear(_ context.Context, _ []string, _ *domain.AddressBook) (string, error) {
	return ClearScreenSequence, nil
}

// Exit says goodbye. The router ends the session.
func (h *Handlers) Exit(_ context.Context, _ []string, _ *domain.AddressBook) (string, error) {
	return GoodbyeMessage, nil
}

// requireArgs fails with an arity error when args has fewer than want items.
// Extra arguments are ignored.
func requireArgs(command string, args []string, want int, prompt string) error {
	if len(args) < want {
		return domain.NewArityError(command, want, len(args), prompt)
	}

	return nil
}

func findRecord(book *domain.AddressBook, name string) (*domain.Record, error) {
	record, ok := book.Find(name)
	if !ok {
		return nil, domain.NewNotFoundError("contact", name)
	}

	return record, nil
}
