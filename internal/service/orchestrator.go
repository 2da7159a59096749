package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Status is the state of the current location request.
type Status string

// Orchestrator states. Succeeded and Failed are terminal; starting a new
// request from any state moves back to StatusAcquiringCoordinates.
const (
	StatusIdle                 Status = "idle"
	StatusAcquiringCoordinates Status = "acquiring_coordinates"
	StatusResolvingAddress     Status = "resolving_address"
	StatusSucceeded            Status = "succeeded"
	StatusFailed               Status = "failed"
)

// Snapshot is the observable state of the orchestrator. A failed snapshot
// never carries an address.
type Snapshot struct {
	Status      Status                 `json:"status"`
	AttemptID   string                 `json:"attempt_id,omitempty"`
	Coordinates *models.Coordinates    `json:"coordinates,omitempty"`
	Address     *models.AddressDetails `json:"address,omitempty"`
	ErrorKind   models.ErrorKind       `json:"error_kind,omitempty"`
	Error       string                 `json:"error,omitempty"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// Errors returned by the orchestrator itself.
var (
	ErrSuperseded        = errors.New("location request superseded by a newer one")
	ErrNoAddress         = errors.New("no resolved address available")
	ErrIncompleteAddress = errors.New("resolver returned an address without a full address line")
)

// Resolver labels used in logs and metrics.
const (
	resolverPrimary  = "primary"
	resolverFallback = "fallback"
)

// Orchestrator runs one location request at a time: it acquires coordinates,
// asks the primary resolver for the address and, when that fails, the
// fallback resolver. Starting a new request cancels the one in flight, whose
// result is then discarded.
type Orchestrator struct {
	log      *slog.Logger       // Logger for logging orchestrator activities
	source   location.Source    // Default coordinate source
	primary  geocoding.Resolver // Resolver tried first
	fallback geocoding.Resolver // Resolver used when the primary fails
	messages locale.Messages    // Locale table for user-facing messages
	metrics  *metrics.Metrics   // Metrics for tracking resolution outcomes
	clock    clockwork.Clock    // Time source for snapshots and durations

	mu     sync.Mutex
	state  Snapshot
	cancel context.CancelFunc
}

// NewOrchestrator creates a new instance of Orchestrator in the idle state.
// It takes a logger, the default coordinate source, the primary and fallback
// resolvers, a locale table for messages, metrics and a clock.
func NewOrchestrator(
	log *slog.Logger,
	source location.Source,
	primary geocoding.Resolver,
	fallback geocoding.Resolver,
	messages locale.Messages,
	metrics *metrics.Metrics,
	clock clockwork.Clock,
) *Orchestrator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Orchestrator{
		log:      log,
		source:   source,
		primary:  primary,
		fallback: fallback,
		messages: messages,
		metrics:  metrics,
		clock:    clock,
		state:    Snapshot{Status: StatusIdle, UpdatedAt: clock.Now()},
	}
}

// Locate runs one location request using src, or the default source when src
// is nil. It returns the resolved address, the classified error of the stage
// that failed, or ErrSuperseded when a newer request started meanwhile.
func (o *Orchestrator) Locate(ctx context.Context, src location.Source) (*models.AddressDetails, error) {
	snap, err := o.Run(ctx, src)
	if err != nil {
		return nil, err
	}

	return snap.Address, nil
}

// Run is Locate returning the final snapshot of this request's own attempt.
// The snapshot is taken when the attempt reaches its terminal state, so a
// request started afterwards cannot leak into it.
func (o *Orchestrator) Run(ctx context.Context, src location.Source) (Snapshot, error) {
	if src == nil {
		src = o.source
	}

	ctx, attemptID, cancel := o.begin(ctx)
	defer cancel()

	o.log.DebugContext(ctx, "Location request started", "attempt", attemptID)

	coords, err := src.Acquire(ctx)
	if err != nil {
		if o.isCurrent(attemptID) {
			o.metrics.LocationErrors.WithLabelValues(string(models.KindOf(err))).Inc()
		}
		return o.fail(ctx, attemptID, err)
	}

	if _, ok := o.transition(attemptID, func(s *Snapshot) {
		s.Status = StatusResolvingAddress
		s.Coordinates = coords
	}); !ok {
		return o.superseded(ctx, attemptID)
	}

	addr, err := o.resolve(ctx, *coords)
	if err != nil {
		return o.fail(ctx, attemptID, err)
	}

	snap, ok := o.transition(attemptID, func(s *Snapshot) {
		s.Status = StatusSucceeded
		s.Address = addr
	})
	if !ok {
		return o.superseded(ctx, attemptID)
	}

	o.metrics.Resolutions.WithLabelValues("success").Inc()
	o.log.InfoContext(ctx, "Location resolved", "attempt", attemptID, "address", addr.FullAddress)

	return snap, nil
}

// Snapshot returns a copy of the current observable state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state
}

// begin starts a new attempt, cancelling the one in flight and discarding prior results.
func (o *Orchestrator) begin(ctx context.Context) (context.Context, string, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	attemptID := uuid.NewString()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.cancel = cancel
	o.state = Snapshot{
		Status:    StatusAcquiringCoordinates,
		AttemptID: attemptID,
		UpdatedAt: o.clock.Now(),
	}

	return ctx, attemptID, cancel
}

// transition applies update if attemptID is still the current attempt and
// returns the resulting state.
func (o *Orchestrator) transition(attemptID string, update func(*Snapshot)) (Snapshot, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.AttemptID != attemptID {
		return Snapshot{}, false
	}

	update(&o.state)
	o.state.UpdatedAt = o.clock.Now()

	return o.state, true
}

func (o *Orchestrator) isCurrent(attemptID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state.AttemptID == attemptID
}

// fail moves the current attempt to StatusFailed and returns err unchanged.
func (o *Orchestrator) fail(ctx context.Context, attemptID string, err error) (Snapshot, error) {
	kind := models.KindOf(err)
	message := o.messages.ErrorMessage(err)

	snap, ok := o.transition(attemptID, func(s *Snapshot) {
		s.Status = StatusFailed
		s.Address = nil
		s.ErrorKind = kind
		s.Error = message
	})
	if !ok {
		return o.superseded(ctx, attemptID)
	}

	o.metrics.Resolutions.WithLabelValues("failure").Inc()
	o.log.ErrorContext(ctx, "Location request failed", "attempt", attemptID, "kind", kind, "error", err)

	return snap, err
}

// superseded reports a stale attempt. Its snapshot is failed and carries no
// address; the shared state belongs to the newer attempt.
func (o *Orchestrator) superseded(ctx context.Context, attemptID string) (Snapshot, error) {
	o.metrics.Superseded.Inc()
	o.log.DebugContext(ctx, "Discarding superseded location request", "attempt", attemptID)

	return Snapshot{
		Status:    StatusFailed,
		AttemptID: attemptID,
		ErrorKind: models.KindUnknown,
		Error:     ErrSuperseded.Error(),
		UpdatedAt: o.clock.Now(),
	}, ErrSuperseded
}

// resolve tries the primary resolver and falls back on any failure. When both
// fail, the fallback's error is returned; the primary's is only logged.
func (o *Orchestrator) resolve(ctx context.Context, coords models.Coordinates) (*models.AddressDetails, error) {
	addr, err := o.try(ctx, resolverPrimary, o.primary, coords)
	if err == nil {
		return addr, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	o.log.WarnContext(ctx, "Primary resolver failed, falling back", "error", err)
	o.metrics.Fallbacks.Inc()

	return o.try(ctx, resolverFallback, o.fallback, coords)
}

// try calls one resolver, recording its latency and outcome. An address
// without a full address line counts as a failure.
func (o *Orchestrator) try(
	ctx context.Context,
	name string,
	resolver geocoding.Resolver,
	coords models.Coordinates,
) (*models.AddressDetails, error) {
	startTime := o.clock.Now()
	addr, err := resolver.Resolve(ctx, coords)
	o.metrics.RequestSeconds.WithLabelValues(name).Observe(o.clock.Since(startTime).Seconds())

	if err == nil && (addr == nil || strings.TrimSpace(addr.FullAddress) == "") {
		err = fmt.Errorf("%w: %w", models.ErrUpstream, ErrIncompleteAddress)
	}

	if err != nil {
		o.metrics.ResolverRequests.WithLabelValues(name, "failure").Inc()
		return nil, err
	}

	o.metrics.ResolverRequests.WithLabelValues(name, "success").Inc()
	o.log.DebugContext(ctx, "Resolver succeeded", "resolver", name)

	return addr, nil
}
