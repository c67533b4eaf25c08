package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/ironlog/internal/config"
	"github.com/2beens/ironlog/internal/db"
	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/cache"
	"github.com/2beens/ironlog/internal/ironlog/state"
	"github.com/2beens/ironlog/internal/ironlog/web"
	"github.com/2beens/ironlog/internal/middleware"
	"github.com/2beens/ironlog/internal/telemetry/metrics"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	rateLimiterName  = "ironlog-mutations"
	maxFormBodyBytes = 64 << 10
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool // only with the postgres state store
	redisClient  *redis.Client
	handler      *web.Handler
	stateManager *state.Manager

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "ironlog-web", rdb)
	if err != nil {
		return nil, err
	}

	var (
		dbPool          *pgxpool.Pool
		extraCollectors []prometheus.Collector
	)
	if cfg.StateStore == config.StateStorePostgres {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(params.VersionInfo, extraCollectors...)
	metricsManager := metrics.NewManager("ironlog", "web", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var store state.Store
	switch cfg.StateStore {
	case config.StateStorePostgres:
		pgStore := state.NewPostgresStore(dbPool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure active session schema: %w", err)
		}
		store = pgStore
	default:
		store = state.NewRedisStore(rdb, cfg.ActiveSessionTTL)
	}

	backendClient := api.NewClient(
		cfg.BackendURL,
		&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.BackendTimeout,
		},
		metricsManager,
	)

	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	stateManager := state.NewManager(store, backendClient, cfg.LegacySessionEnd, metricsManager)
	userCache := cache.NewUserCache(
		cache.NewFreeCache(cfg.CacheSizeMB),
		cfg.ExercisesCacheTTL,
		cfg.OverviewCacheTTL,
		metricsManager,
	)

	return &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		dbPool:       dbPool,
		redisClient:  rdb,
		stateManager: stateManager,
		handler: web.NewHandler(
			backendClient,
			stateManager,
			userCache,
			templates,
			metricsManager,
			cfg.Location(),
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("ironlog-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")
	r.PathPrefix("/static/").Handler(web.StaticHandler()).Methods("GET").Name("static")
	r.Handle("/", http.RedirectHandler("/app", http.StatusFound)).Methods("GET").Name("root")

	appRouter := r.NewRoute().Subrouter()
	s.handler.SetupRoutes(appRouter)

	appRouter.Use(middleware.PanicRecovery(s.metricsManager))
	appRouter.Use(middleware.LogRequest())
	appRouter.Use(middleware.RequestMetrics(s.metricsManager))
	appRouter.Use(middleware.Identity(s.config.UserHeader))
	appRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		rateLimiterName,
		s.config.MutationsPerMinAllowed,
		s.metricsManager,
	))
	appRouter.Use(middleware.LimitRequestBody(maxFormBodyBytes))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if s.versionInfo != "" {
		w.Header().Set("X-IronLog-Version", s.versionInfo)
	}
	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ironlog service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
