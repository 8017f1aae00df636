package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/platform/logging"
)

// Replies produced when a handler fails.
const (
	MissingContactMessage = "Give me defined contact please."
	MalformedInputMessage = "Give me correct command please."
	DefaultArityPrompt    = "Give me name please."
	InternalErrorMessage  = "Something went wrong, try again."
)

// WithRecovery wraps next so that no error or panic reaches the caller.
// Domain errors become fixed user-facing replies; anything else is logged
// and reported generically. The returned handler always has a nil error.
func WithRecovery(next Handler) Handler {
	return func(ctx context.Context, args []string, book *domain.AddressBook) (reply string, err error) {
		defer func() {
			if p := recover(); p != nil {
				logging.FromContext(ctx).ErrorContext(ctx, "command handler panicked",
					slog.String("panic", fmt.Sprint(p)),
					slog.String("stack", string(debug.Stack())),
				)
				reply, err = MalformedInputMessage, nil
			}
		}()

		reply, err = next(ctx, args, book)
		if err != nil {
			return replyForError(ctx, err), nil
		}

		return reply, nil
	}
}

func replyForError(ctx context.Context, err error) string {
	logger := logging.FromContext(ctx)
	attrs := errorAttrs(err)

	var arity *domain.ArityError
	switch {
	case errors.As(err, &arity):
		logger.DebugContext(ctx, "command rejected", attrs...)
		if arity.Prompt != "" {
			return arity.Prompt
		}
		return DefaultArityPrompt
	case domain.IsNotFound(err):
		logger.DebugContext(ctx, "command rejected", attrs...)
		return MissingContactMessage
	case domain.IsValidation(err):
		logger.DebugContext(ctx, "command rejected", attrs...)
		return MalformedInputMessage
	default:
		logger.ErrorContext(ctx, "command failed", attrs...)
		return InternalErrorMessage
	}
}

// errorAttrs logs the offending input under its field name ("phone",
// "birthday", "contact", ...) so the redaction rules keyed on those names apply.
func errorAttrs(err error) []any {
	attrs := []any{slog.String("error", err.Error())}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) && notFound.ID != "" {
		attrs = append(attrs, slog.String(notFound.Entity, notFound.ID))
	}

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) && invalid.Field != "" && invalid.Value != nil {
		attrs = append(attrs, slog.Any(invalid.Field, invalid.Value))
	}

	return attrs
}
