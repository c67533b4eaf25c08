package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
)

const CreateActiveSessionTableSQL = `
CREATE TABLE IF NOT EXISTS ironlog_active_session
(
    username   VARCHAR PRIMARY KEY,
    session_id BIGINT      NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type dbPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db dbPool
}

func NewPostgresStore(db dbPool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, CreateActiveSessionTableSQL); err != nil {
		return fmt.Errorf("create active session table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, username string) (_ int64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.postgres.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	var sessionID int64
	err = s.db.QueryRow(ctx, `
		SELECT session_id FROM ironlog_active_session
		WHERE username = $1
	`, username).Scan(&sessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select active session: %w", err)
	}
	return sessionID, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, username string, sessionID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.postgres.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("username", username),
		attribute.Int64("session.id", sessionID),
	)

	if _, err := s.db.Exec(ctx, `
		INSERT INTO ironlog_active_session (username, session_id, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (username) DO UPDATE
		SET session_id = EXCLUDED.session_id, updated_at = EXCLUDED.updated_at
	`, username, sessionID); err != nil {
		return fmt.Errorf("upsert active session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, username string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.postgres.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	if _, err := s.db.Exec(ctx, `
		DELETE FROM ironlog_active_session
		WHERE username = $1
	`, username); err != nil {
		return fmt.Errorf("delete active session: %w", err)
	}
	return nil
}
