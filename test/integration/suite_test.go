//go:build integration

package integration

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/assistant-bot/internal/adapters/cli"
	"github.com/jsamuelsen/assistant-bot/internal/adapters/storage"
	"github.com/jsamuelsen/assistant-bot/internal/app"
	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/platform/config"
	"github.com/jsamuelsen/assistant-bot/internal/ports"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	dir     string
	driver  string
	path    string
	strict  bool
	today   time.Time
	store   ports.AddressBookStore
	session *app.Session
	book    *domain.AddressBook
	router  *cli.Router
	reply   string
	exited  bool
}

// newTestContext creates a new test context with sensible defaults.
func newTestContext() *testContext {
	return &testContext{strict: true, today: time.Now()}
}

// reset clears state between scenarios.
func (tc *testContext) reset() error {
	if tc.store != nil {
		_ = tc.store.Close()
	}
	if tc.dir != "" {
		_ = os.RemoveAll(tc.dir)
	}

	dir, err := os.MkdirTemp("", "assistant-bdd-")
	if err != nil {
		return err
	}

	*tc = testContext{
		dir:    dir,
		driver: storage.DriverFile,
		path:   filepath.Join(dir, "book.json"),
		strict: true,
		today:  time.Now(),
		book:   domain.NewAddressBook(),
	}

	return nil
}

// newRecord builds a record with phones.
func newRecord(name string, phones ...string) (*domain.Record, error) {
	r, err := domain.NewRecord(name)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	// Reset state before each scenario
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Clean up after each scenario
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.store != nil {
			_ = tc.store.Close()
			tc.store = nil
		}
		_ = os.RemoveAll(tc.dir)
		return ctx, nil
	})

	// Register step definitions
	ctx.Step(`^an empty address book$`, tc.anEmptyAddressBook)
	ctx.Step(`^today is "([^"]*)"$`, tc.todayIs)
	ctx.Step(`^strict phone edits are (enabled|disabled)$`, tc.strictPhoneEditsAre)
	ctx.Step(`^contacts are stored with the "([^"]*)" driver in "([^"]*)"$`, tc.contactsAreStored)
	ctx.Step(`^a session is started$`, tc.aSessionIsStarted)
	ctx.Step(`^the session is ended$`, tc.theSessionIsEnded)
	ctx.Step(`^I enter "([^"]*)"$`, tc.iEnter)
	ctx.Step(`^I enter:$`, tc.iEnterLines)
	ctx.Step(`^the reply should be "([^"]*)"$`, tc.theReplyShouldBe)
	ctx.Step(`^the reply should be:$`, tc.theReplyShouldBeDoc)
	ctx.Step(`^the reply should contain "([^"]*)"$`, tc.theReplyShouldContain)
	ctx.Step(`^the session should end$`, tc.theSessionShouldEnd)
	ctx.Step(`^the address book should have (\d+) contacts?$`, tc.theAddressBookShouldHave)
}

func (tc *testContext) anEmptyAddressBook() error {
	tc.book = domain.NewAddressBook()
	return nil
}

func (tc *testContext) todayIs(raw string) error {
	today, err := time.Parse(domain.BirthdayLayout, raw)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", raw, err)
	}

	tc.today = today
	tc.router = nil

	return nil
}

func (tc *testContext) strictPhoneEditsAre(state string) error {
	tc.strict = state == "enabled"
	tc.router = nil
	return nil
}

func (tc *testContext) contactsAreStored(driver, name string) error {
	tc.driver = driver
	tc.path = filepath.Join(tc.dir, name)
	return nil
}

// aSessionIsStarted opens the configured store and loads the book like the binary does.
func (tc *testContext) aSessionIsStarted() error {
	ctx := context.Background()

	if tc.store == nil {
		store, err := storage.New(ctx, &config.StorageConfig{Driver: tc.driver, Path: tc.path})
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		tc.store = store
	}

	tc.session = app.NewSession(tc.store, &app.SessionConfig{Logger: slog.New(slog.DiscardHandler)})
	tc.book = tc.session.Open(ctx)
	tc.exited = false

	return nil
}

func (tc *testContext) theSessionIsEnded() error {
	if tc.session == nil {
		return fmt.Errorf("no session was started")
	}

	return tc.session.Close(context.Background())
}

func (tc *testContext) routerFor() *cli.Router {
	if tc.router == nil {
		today := tc.today
		tc.router = cli.NewRouter(cli.WithLogger(slog.New(slog.DiscardHandler)))
		cli.NewHandlers(
			cli.WithStrictPhoneEdits(tc.strict),
			cli.WithClock(func() time.Time { return today }),
		).Register(tc.router)
	}

	return tc.router
}

func (tc *testContext) iEnter(line string) error {
	tc.reply, tc.exited = tc.routerFor().Dispatch(context.Background(), line, tc.book)
	return nil
}

func (tc *testContext) iEnterLines(doc *godog.DocString) error {
	for _, line := range strings.Split(doc.Content, "\n") {
		if err := tc.iEnter(line); err != nil {
			return err
		}
	}

	return nil
}

func (tc *testContext) theReplyShouldBe(expected string) error {
	if tc.reply != expected {
		return fmt.Errorf("expected reply %q, got %q", expected, tc.reply)
	}

	return nil
}

func (tc *testContext) theReplyShouldBeDoc(doc *godog.DocString) error {
	return tc.theReplyShouldBe(doc.Content)
}

func (tc *testContext) theReplyShouldContain(text string) error {
	if !strings.Contains(tc.reply, text) {
		return fmt.Errorf("reply does not contain %q.\nReply: %s", text, tc.reply)
	}

	return nil
}

func (tc *testContext) theSessionShouldEnd() error {
	if !tc.exited {
		return fmt.Errorf("expected the last command to end the session, reply was %q", tc.reply)
	}

	return nil
}

func (tc *testContext) theAddressBookShouldHave(count int) error {
	if tc.book.Len() != count {
		return fmt.Errorf("expected %d contacts, got %d: %v", count, tc.book.Len(), tc.book.Names())
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
