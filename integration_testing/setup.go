package integration_testing

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/ironlog/internal/config"
	"github.com/2beens/ironlog/internal/ironlog/api"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort     = 9000
	serverHost     = "127.0.0.1"
	postgresDBName = "ironlog"
	postgresPass   = "postgres"
	userHeader     = "X-Forwarded-User"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

func getTestConfig(backendURL, redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:            "integration",
		Host:                   serverHost,
		Port:                   serverPort,
		LogLevel:               "debug",
		PrometheusMetricsHost:  serverHost,
		PrometheusMetricsPort:  "9001",
		BackendURL:             backendURL,
		BackendTimeout:         5 * time.Second,
		UserHeader:             userHeader,
		Timezone:               "UTC",
		StateStore:             config.StateStorePostgres,
		CacheSizeMB:            8,
		ExercisesCacheTTL:      60,
		OverviewCacheTTL:       60,
		MutationsPerMinAllowed: 100,
		RedisHost:              "localhost",
		RedisPort:              redisPort,
		PostgresHost:           "localhost",
		PostgresPort:           postgresPort,
		PostgresDBName:         postgresDBName,
	}
}

func runRedis(pool *dockertest.Pool) (*dockertest.Resource, error) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "ironlog-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}
	return resource, nil
}

// runPostgres starts postgres and waits until a plain database/sql
// connection to it succeeds.
func runPostgres(pool *dockertest.Pool) (*dockertest.Resource, *sql.DB, error) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + postgresPass,
			"POSTGRES_DB=" + postgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	dsn := fmt.Sprintf(
		"postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		postgresPass, resource.GetPort("5432/tcp"), postgresDBName,
	)
	var db *sql.DB
	if err := pool.Retry(func() error {
		var err error
		if db, err = sql.Open("postgres", dsn); err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		_ = resource.Close()
		return nil, nil, fmt.Errorf("connect to db: %w", err)
	}

	return resource, db, nil
}

// fakeBackend stands in for the IronLog JSON API. It keeps just enough state
// to drive a workout through the server.
type fakeBackend struct {
	mutex    sync.Mutex
	nextID   int64
	sessions map[int64]*api.SessionDetail
	ended    map[int64]*float64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextID:   100,
		sessions: make(map[int64]*api.SessionDetail),
		ended:    make(map[int64]*float64),
	}
}

func (b *fakeBackend) endedSession(id int64) (*float64, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	calories, ok := b.ended[id]
	return calories, ok
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/exercises", func(w http.ResponseWriter, r *http.Request) {
		legs := "Legs"
		writeJSON(w, http.StatusOK, []api.Exercise{{ID: 7, Name: "Squat", MuscleGroup: &legs}})
	}).Methods("GET")

	r.HandleFunc("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		var s api.NewSession
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		b.mutex.Lock()
		b.nextID++
		id := b.nextID
		b.sessions[id] = &api.SessionDetail{ID: id, SessionDate: s.Date}
		b.mutex.Unlock()
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}).Methods("POST")

	r.HandleFunc("/api/sessions/{id:[0-9]+}/end", func(w http.ResponseWriter, r *http.Request) {
		var end api.EndSession
		if err := json.NewDecoder(r.Body).Decode(&end); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		id := pathID(r)
		b.mutex.Lock()
		defer b.mutex.Unlock()
		if _, ok := b.sessions[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		b.ended[id] = end.CaloriesBurned
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}).Methods("POST")

	r.HandleFunc("/api/sessions/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		s, ok := b.sessions[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusOK, s)
	}).Methods("GET")

	r.HandleFunc("/api/sets", func(w http.ResponseWriter, r *http.Request) {
		var set api.NewSet
		if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		b.mutex.Lock()
		defer b.mutex.Unlock()
		s, ok := b.sessions[set.SessionID]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		legs := "Legs"
		s.Sets = append(s.Sets, api.LoggedSet{
			ID:           int64(len(s.Sets) + 1),
			SessionID:    set.SessionID,
			ExerciseID:   set.ExerciseID,
			ExerciseName: "Squat",
			MuscleGroup:  &legs,
			SetNumber:    api.Count(set.SetNumber),
			Reps:         api.FloatPtr(set.Reps),
			WeightKg:     set.WeightKg,
			RPE:          set.RPE,
		})
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}).Methods("POST")

	return r
}
