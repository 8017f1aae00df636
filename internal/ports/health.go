package ports

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateChecker is returned when attempting to register a health checker
// with a name that is already registered.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// The doctor command registers the configured store and output paths.
//
// Example implementation:
//
//	func (s *SQLiteStore) Name() string { return "storage.sqlite" }
//
//	func (s *SQLiteStore) Check(ctx context.Context) error {
//	    return s.db.PingContext(ctx)
//	}
type HealthChecker interface {
	// Name returns a unique identifier for this health check.
	Name() string

	// Check returns an error if the component is unusable.
	// Implementations should respect context cancellation and deadlines.
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	// HealthStatusHealthy indicates all checks passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy indicates at least one check failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	// Status is the overall health status.
	Status HealthStatus

	// Checks holds one result per checker in registration order.
	Checks []CheckResult
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Name     string
	Status   HealthStatus
	Message  string
	Duration time.Duration
}

// HealthRegistry runs registered checks one after another in registration order.
type HealthRegistry struct {
	checkers []HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{}
}

// Register adds a health checker to the registry.
// Returns an error if a checker with the same name is already registered.
func (r *HealthRegistry) Register(checker HealthChecker) error {
	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every check, even after a failure, and aggregates the results.
func (r *HealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	result := &HealthResult{
		Status: HealthStatusHealthy,
		Checks: make([]CheckResult, 0, len(r.checkers)),
	}

	for _, c := range r.checkers {
		start := time.Now()
		err := c.Check(ctx)

		check := CheckResult{
			Name:     c.Name(),
			Status:   HealthStatusHealthy,
			Duration: time.Since(start),
		}
		if err != nil {
			check.Status = HealthStatusUnhealthy
			check.Message = err.Error()
			result.Status = HealthStatusUnhealthy
		}

		result.Checks = append(result.Checks, check)
	}

	return result
}
