package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const activeSessionKeyPrefix = "ironlog::active-session::"

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration // 0 -> keep until the session is ended
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func activeSessionKey(username string) string {
	return activeSessionKeyPrefix + username
}

func (s *RedisStore) Get(ctx context.Context, username string) (_ int64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.redis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	val, err := s.redisClient.Get(ctx, activeSessionKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get: %w", err)
	}

	sessionID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse stored session id [%s]: %w", val, err)
	}
	return sessionID, true, nil
}

func (s *RedisStore) Set(ctx context.Context, username string, sessionID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("username", username),
		attribute.Int64("session.id", sessionID),
	)

	if err := s.redisClient.Set(ctx, activeSessionKey(username), strconv.FormatInt(sessionID, 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, username string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "state.redis.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	if err := s.redisClient.Del(ctx, activeSessionKey(username)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
