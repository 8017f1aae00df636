// Package metrics keeps prometheus counters for the command loop and dumps
// them in the node_exporter textfile format when a session ends.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "assistant"

// Commands counts handled commands by verb and outcome.
type Commands struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCommands creates the collectors on a private registry so tests and
// repeated sessions never collide on the global one.
func NewCommands() *Commands {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Number of commands handled, by command and outcome.",
	}, []string{"command", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "command_duration_seconds",
		Help:      "Command handling latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"command"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(total, duration)

	return &Commands{registry: registry, total: total, duration: duration}
}

// Observe records one handled command.
// A nil receiver is a no-op.
func (c *Commands) Observe(command, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.total.WithLabelValues(command, outcome).Inc()
	c.duration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// Registry exposes the private registry.
func (c *Commands) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all collected metrics to path.
// The write is atomic, so a scraper never reads a partial file.
func (c *Commands) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating metrics directory: %w", err)
	}

	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
