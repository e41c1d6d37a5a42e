// Package circuitbreaker guards the MongoDB repositories so a failing database
// sheds load instead of stalling every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/cargo-service/internal/metrics"
)

// ErrCircuitOpen is returned without calling the guarded function.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed passes every call through.
	StateClosed State = iota
	// StateOpen rejects calls until Timeout has passed since the last failure.
	StateOpen
	// StateHalfOpen lets one probe call through at a time.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// gauge maps a state onto the exported metric scale: 0 closed, 1 half-open, 2 open.
func (s State) gauge() int {
	switch s {
	case StateHalfOpen:
		return 1
	case StateOpen:
		return 2
	default:
		return 0
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive probe successes that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// Name labels logs and the state gauge.
	Name string
	// IsFailure decides whether an error counts against the circuit.
	// Nil counts everything except context cancellation.
	IsFailure func(error) bool
	// OnStateChange runs after every transition, with the breaker lock released.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

func defaultIsFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	now             func() time.Time
	mu              sync.RWMutex
	state           State
	failureCount    int
	successCount    int
	rejected        int64
	probing         bool
	lastFailureTime time.Time
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = defaultIsFailure
	}
	cb := &CircuitBreaker{config: config, now: time.Now}
	metrics.SetCircuitBreakerState(config.Name, StateClosed.gauge())
	return cb
}

// Execute runs fn unless the circuit is open. A done ctx returns its error
// without touching the circuit.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	probe, err := cb.admit()
	if err != nil {
		return err
	}

	err = fn()
	cb.record(probe, err)
	return err
}

// Call is Execute for functions that return a value.
func Call[T any](ctx context.Context, cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var err error
		result, err = fn()
		return err
	})
	return result, err
}

// admit decides whether a call may run. probe is true for the half-open trial call.
func (cb *CircuitBreaker) admit() (probe bool, err error) {
	cb.mu.Lock()

	switch cb.state {
	case StateClosed:
		cb.mu.Unlock()
		return false, nil
	case StateOpen:
		if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
			cb.rejected++
			cb.mu.Unlock()
			return false, ErrCircuitOpen
		}
		cb.successCount = 0
		cb.probing = true
		notify := cb.transition(StateHalfOpen)
		cb.mu.Unlock()
		notify()
		return true, nil
	default:
		if cb.probing {
			cb.rejected++
			cb.mu.Unlock()
			return false, ErrCircuitOpen
		}
		cb.probing = true
		cb.mu.Unlock()
		return true, nil
	}
}

// record folds the outcome of an admitted call into the state machine.
func (cb *CircuitBreaker) record(probe bool, err error) {
	cb.mu.Lock()
	if probe {
		cb.probing = false
	}

	notify := func() {}
	switch {
	case err != nil && cb.config.IsFailure(err):
		notify = cb.onFailure()
	case err == nil:
		notify = cb.onSuccess()
	}
	cb.mu.Unlock()
	notify()
}

// onFailure handles a failure. Callers hold mu.
func (cb *CircuitBreaker) onFailure() func() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			return cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		return cb.transition(StateOpen)
	}
	return func() {}
}

// onSuccess handles a success. Callers hold mu.
func (cb *CircuitBreaker) onSuccess() func() {
	cb.failureCount = 0
	if cb.state != StateHalfOpen {
		cb.successCount = 0
		return func() {}
	}

	cb.successCount++
	if cb.successCount < cb.config.SuccessThreshold {
		return func() {}
	}
	cb.successCount = 0
	return cb.transition(StateClosed)
}

// transition switches state under mu and returns the side effects to run once
// mu is released.
func (cb *CircuitBreaker) transition(to State) func() {
	from := cb.state
	cb.state = to
	name, failures, hook := cb.config.Name, cb.failureCount, cb.config.OnStateChange

	return func() {
		metrics.SetCircuitBreakerState(name, to.gauge())

		event := log.Info()
		if to == StateOpen {
			event = log.Warn().Int("failure_count", failures)
		}
		event.
			Str("circuit_breaker", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Circuit breaker state changed")

		if hook != nil {
			hook(name, from, to)
		}
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a snapshot of a breaker.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	Rejected     int64     `json:"rejected"`
	LastFailure  time.Time `json:"last_failure,omitzero"`
	IsHealthy    bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		Rejected:     cb.rejected,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
