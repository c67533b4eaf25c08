package state

import (
	"context"
	"fmt"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/telemetry/metrics"
	"github.com/2beens/ironlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=state_test

type sessionBackend interface {
	CreateSession(ctx context.Context, s api.NewSession) (int64, error)
	EndSession(ctx context.Context, id int64, caloriesBurned *float64) error
}

// Manager drives the NoActiveSession <-> ActiveSession(id) state per user.
type Manager struct {
	store          Store
	backend        sessionBackend
	legacyEnd      bool // end locally, without calling the backend
	metricsManager *metrics.Manager
}

func NewManager(
	store Store,
	backend sessionBackend,
	legacyEnd bool,
	metricsManager *metrics.Manager,
) *Manager {
	return &Manager{
		store:          store,
		backend:        backend,
		legacyEnd:      legacyEnd,
		metricsManager: metricsManager,
	}
}

// Active restores the persisted session id. The backend is not consulted,
// so an id of a session ended elsewhere is returned as is.
func (m *Manager) Active(ctx context.Context, username string) (_ int64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.manager.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, ok, err := m.store.Get(ctx, username)
	if err != nil {
		return 0, false, fmt.Errorf("get active session: %w", err)
	}
	return id, ok, nil
}

// Start creates a backend session and makes it the active one,
// replacing any previous active session of the user.
func (m *Manager) Start(ctx context.Context, username string, s api.NewSession) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.manager.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := m.backend.CreateSession(ctx, s)
	if err != nil {
		if api.IsRejected(err) {
			log.Warnf("start session for %s rejected: %s", username, err)
			return 0, fmt.Errorf("%w: %w", ErrSessionNotCreated, err)
		}
		return 0, fmt.Errorf("create session: %w", err)
	}
	if id <= 0 {
		log.Warnf("start session for %s: backend returned no session id", username)
		return 0, ErrSessionNotCreated
	}
	span.SetAttributes(attribute.Int64("session.id", id))

	if err := m.store.Set(ctx, username, id); err != nil {
		return 0, fmt.Errorf("store active session: %w", err)
	}

	if m.metricsManager != nil {
		m.metricsManager.CounterSessionsStarted.Inc()
	}
	return id, nil
}

// End finishes the active session and returns its id. A backend rejection
// is logged and the session is cleared anyway; a transport failure keeps it.
func (m *Manager) End(ctx context.Context, username string, caloriesBurned *float64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.manager.end")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, ok, err := m.store.Get(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("get active session: %w", err)
	}
	if !ok {
		return 0, ErrNoActiveSession
	}
	span.SetAttributes(attribute.Int64("session.id", id))

	if !m.legacyEnd {
		if err := m.backend.EndSession(ctx, id, caloriesBurned); err != nil {
			if !api.IsRejected(err) {
				return 0, fmt.Errorf("end session: %w", err)
			}
			log.Warnf("end session %d for %s rejected, clearing anyway: %s", id, username, err)
		}
	}

	if err := m.store.Delete(ctx, username); err != nil {
		return 0, fmt.Errorf("clear active session: %w", err)
	}

	if m.metricsManager != nil {
		m.metricsManager.CounterSessionsEnded.Inc()
	}
	return id, nil
}
