package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/ironlog/internal/config"
	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/cache"
	"github.com/2beens/ironlog/internal/ironlog/state"
	"github.com/2beens/ironlog/internal/ironlog/web"
	"github.com/2beens/ironlog/internal/telemetry/metrics"
	testingpkg "github.com/2beens/ironlog/pkg/testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, backendURL string, mutationsPerMin int) *Server {
	t.Helper()

	_, rdb := testingpkg.GetMiniRedisClient(t)
	metricsManager := metrics.NewTestManager()
	cfg := &config.Config{
		UserHeader:             "X-Forwarded-User",
		MutationsPerMinAllowed: mutationsPerMin,
	}

	backendClient := api.NewClient(backendURL, &http.Client{Timeout: 2 * time.Second}, metricsManager)
	stateManager := state.NewManager(state.NewRedisStore(rdb, 0), backendClient, false, metricsManager)
	templates, err := web.LoadTemplates()
	require.NoError(t, err)

	return &Server{
		config:         cfg,
		versionInfo:    "test-version",
		redisClient:    rdb,
		stateManager:   stateManager,
		metricsManager: metricsManager,
		otelShutdown:   func() {},
		handler: web.NewHandler(
			backendClient,
			stateManager,
			cache.NewUserCache(cache.NewTestCache(), 60, 60, metricsManager),
			templates,
			metricsManager,
			time.UTC,
		),
	}
}

func TestServer_Routes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	server := newTestServer(t, backend.URL, 0)
	router := server.routerSetup()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.Equal(t, "test-version", rr.Header().Get("X-IronLog-Version"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/app", rr.Header().Get("Location"))

	// identity header missing
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("X-Forwarded-User", "serj")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No sessions yet.")
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterRequests.WithLabelValues("GET", "200")))
}

func TestServer_MutationsRateLimited(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
	}))
	defer backend.Close()

	server := newTestServer(t, backend.URL, 2)
	router := server.routerSetup()

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/sets", nil)
		req.Header.Set("X-Forwarded-User", "serj")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	// no active session, each accepted request only answers with a toast
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooEarly, post())
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterRateLimitedRequests))
}
