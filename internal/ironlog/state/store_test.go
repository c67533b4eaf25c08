package state_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/state"
	testingpkg "github.com/2beens/ironlog/pkg/testing"

	"github.com/go-redis/redismock/v8"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	server, rdb := testingpkg.GetMiniRedisClient(t)
	store := state.NewRedisStore(rdb, 0)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "serj", 12))
	id, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	val, err := server.Get("ironlog::active-session::serj")
	require.NoError(t, err)
	assert.Equal(t, "12", val)

	// one id per user, last write wins
	require.NoError(t, store.Set(ctx, "serj", 13))
	id, _, err = store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.Equal(t, int64(13), id)

	_, ok, err = store.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "serj"))
	_, ok, err = store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, store.Delete(ctx, "serj"))
}

func TestRedisStore_TTL(t *testing.T) {
	server, rdb := testingpkg.GetMiniRedisClient(t)
	store := state.NewRedisStore(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "serj", 5))
	assert.Equal(t, time.Hour, server.TTL("ironlog::active-session::serj"))

	server.FastForward(2 * time.Hour)
	_, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Mock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := state.NewRedisStore(db, 0)
	ctx := context.Background()
	key := "ironlog::active-session::serj"

	mock.ExpectGet(key).RedisNil()
	_, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectSet(key, "12", 0).SetVal("OK")
	require.NoError(t, store.Set(ctx, "serj", 12))

	mock.ExpectGet(key).SetVal("not-a-number")
	_, _, err = store.Get(ctx, "serj")
	require.Error(t, err)

	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	_, _, err = store.Get(ctx, "serj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, store.Delete(ctx, "serj"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer mock.Close()

	store := state.NewPostgresStore(mock)
	ctx := context.Background()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ironlog_active_session`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	require.NoError(t, store.EnsureSchema(ctx))

	mock.ExpectQuery(`SELECT session_id FROM ironlog_active_session`).
		WithArgs("serj").
		WillReturnError(pgx.ErrNoRows)
	_, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectExec(`INSERT INTO ironlog_active_session`).
		WithArgs("serj", int64(12)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, store.Set(ctx, "serj", 12))

	mock.ExpectQuery(`SELECT session_id FROM ironlog_active_session`).
		WithArgs("serj").
		WillReturnRows(pgxmock.NewRows([]string{"session_id"}).AddRow(int64(12)))
	id, ok, err := store.Get(ctx, "serj")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	mock.ExpectExec(`DELETE FROM ironlog_active_session`).
		WithArgs("serj").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, store.Delete(ctx, "serj"))

	mock.ExpectQuery(`SELECT session_id FROM ironlog_active_session`).
		WithArgs("serj").
		WillReturnError(errors.New("db is down"))
	_, _, err = store.Get(ctx, "serj")
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
