package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
)

// REPL messages.
const (
	WelcomeMessage = "Welcome to the assistant bot!"
	Prompt         = "Enter a command: "
)

// MaxLineBytes bounds one command line. Longer lines are answered with
// InvalidCommandMessage and discarded.
const MaxLineBytes = 64 * 1024

// REPL reads commands line by line and prints each reply.
type REPL struct {
	router *Router
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a loop reading from in and writing to out.
func NewREPL(router *Router, in io.Reader, out io.Writer) *REPL {
	return &REPL{router: router, in: in, out: out}
}

// Run prints the welcome line and dispatches every non-blank line until an
// exit verb, the end of input or ctx is done. Only read and write failures
// are returned.
//
// Cancellation is observed between lines; a blocked read on a terminal
// returns once the line is entered or the input is closed.
func (r *REPL) Run(ctx context.Context, book *domain.AddressBook) error {
	if _, err := fmt.Fprintln(r.out, WelcomeMessage); err != nil {
		return err
	}

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := fmt.Fprint(r.out, Prompt); err != nil {
			return err
		}

		line, tooLong, err := readLine(reader)
		if err != nil {
			// EOF ends the session like exit does.
			_, _ = fmt.Fprintln(r.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if tooLong {
			if _, err := fmt.Fprintln(r.out, InvalidCommandMessage); err != nil {
				return err
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		reply, exit := r.router.Dispatch(ctx, line, book)
		if _, err := fmt.Fprintln(r.out, reply); err != nil {
			return err
		}

		if exit {
			return nil
		}
	}
}

// readLine returns the next line without its line ending. A line longer than
// MaxLineBytes, line ending included, is consumed and reported as tooLong. A final line without a
// newline is returned before io.EOF.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	read := 0

	for {
		chunk, err := r.ReadSlice('\n')
		read += len(chunk)
		if read > MaxLineBytes {
			tooLong, buf = true, nil
		} else {
			buf = append(buf, chunk...)
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read > 0:
			// The next call reports io.EOF.
		case err != nil:
			return "", false, err
		}

		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}
