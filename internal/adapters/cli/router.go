// Package cli turns lines typed by the user into address book operations.
//
// A Router maps each verb to one Handler. Handlers are wrapped at
// registration with instrumentation and WithRecovery, so Dispatch always
// yields a printable reply and never an error.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/assistant-bot/internal/domain"
	"github.com/jsamuelsen/assistant-bot/internal/platform/logging"
	"github.com/jsamuelsen/assistant-bot/internal/platform/metrics"
	"github.com/jsamuelsen/assistant-bot/internal/platform/telemetry"
)

// InvalidCommandMessage is the reply for a blank line or an unknown verb.
const InvalidCommandMessage = "Invalid command."

// Handler executes one command against the shared book and returns the reply.
type Handler func(ctx context.Context, args []string, book *domain.AddressBook) (string, error)

type route struct {
	handler Handler
	exit    bool
}

// Router resolves verbs to handlers with a single map lookup.
type Router struct {
	routes    map[string]route
	logger    *slog.Logger
	commands  *metrics.Commands
	telemetry *telemetry.CommandMetrics
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger attached to every dispatch context.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithMetrics records every dispatch in the prometheus collector.
func WithMetrics(c *metrics.Commands) Option {
	return func(r *Router) { r.commands = c }
}

// WithTelemetry opens a span and records otel instruments per dispatch.
func WithTelemetry(m *telemetry.CommandMetrics) Option {
	return func(r *Router) { r.telemetry = m }
}

// NewRouter creates an empty router.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]route),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register binds verb to h. Each alias is registered as its own verb.
func (r *Router) Register(verb string, h Handler) {
	r.add(verb, h, false)
}

// RegisterExit binds verb to h and marks it as ending the session.
func (r *Router) RegisterExit(verb string, h Handler) {
	r.add(verb, h, true)
}

func (r *Router) add(verb string, h Handler, exit bool) {
	key := normalizeVerb(verb)
	r.routes[key] = route{
		handler: WithRecovery(r.instrument(key, h)),
		exit:    exit,
	}
}

// Verbs returns the registered verbs in sorted order.
func (r *Router) Verbs() []string {
	verbs := make([]string, 0, len(r.routes))
	for verb := range r.routes {
		verbs = append(verbs, verb)
	}
	slices.Sort(verbs)

	return verbs
}

// Dispatch parses line, runs the matching handler and returns its reply.
// exit reports whether the verb ends the session.
func (r *Router) Dispatch(ctx context.Context, line string, book *domain.AddressBook) (reply string, exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return InvalidCommandMessage, false
	}

	verb := normalizeVerb(fields[0])

	rt, ok := r.routes[verb]
	if !ok {
		r.commands.Observe("unknown", telemetry.OutcomeRejected, 0)
		r.logger.DebugContext(ctx, "unknown command", slog.String("command", verb))

		return InvalidCommandMessage, false
	}

	if _, ok := logging.LoggerFromContext(ctx); !ok {
		ctx = logging.WithContext(ctx, r.logger)
	}
	ctx = logging.WithCorrelationID(ctx, uuid.NewString())

	// Errors were already turned into replies by WithRecovery.
	reply, _ = rt.handler(ctx, fields[1:], book)

	return reply, rt.exit
}

// instrument records the outcome of every call to next, panics included.
func (r *Router) instrument(verb string, next Handler) Handler {
	return func(ctx context.Context, args []string, book *domain.AddressBook) (reply string, err error) {
		start := time.Now()
		ctx, finish := r.telemetry.Start(ctx, verb)
		if traceID := telemetry.TraceID(ctx); traceID != "" {
			ctx = logging.WithTraceID(ctx, traceID)
		}

		outcome := telemetry.OutcomeError
		defer func() {
			finish(outcome)
			r.commands.Observe(verb, outcome, time.Since(start))
		}()

		logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "dispatching command",
			slog.String("command", verb),
			slog.Int("args", len(args)),
		)

		reply, err = next(ctx, args, book)
		outcome = classify(err)

		return reply, err
	}
}

func classify(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeOK
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrArity):
		return telemetry.OutcomeRejected
	default:
		return telemetry.OutcomeError
	}
}

func normalizeVerb(verb string) string {
	return strings.ToLower(strings.TrimSpace(verb))
}
