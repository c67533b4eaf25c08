package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/2beens/ironlog/internal"
	"github.com/2beens/ironlog/internal/ironlog/state"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite

	DB         *sql.DB
	dockerPool *dockertest.Pool
	backend    *fakeBackend
	server     *internal.Server
	httpClient *http.Client
	teardown   []func()
}

func TestIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration tests need docker")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.teardown = make([]func(), 0)
	s.httpClient = &http.Client{}

	var err error
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	if err = s.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisResource, err := runRedis(s.dockerPool)
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup redis: %s", err)
	}
	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	pgResource, db, err := runPostgres(s.dockerPool)
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}
	s.DB = db
	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	s.backend = newFakeBackend()
	backendServer := httptest.NewServer(s.backend.router())
	s.teardown = append(s.teardown, backendServer.Close)

	cfg := getTestConfig(backendServer.URL, redisResource.GetPort("6379/tcp"), pgResource.GetPort("5432/tcp"))
	s.server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:           cfg,
		VersionInfo:      "test-version-info",
		PostgresPassword: postgresPass,
	})
	if err != nil {
		s.cleanup()
		log.Fatalf("new server: %s", err)
	}

	s.server.Serve(cfg.Host, cfg.Port)
	if err := s.dockerPool.Retry(func() error {
		resp, err := s.httpClient.Get(serverEndpoint + "/health")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		s.cleanup()
		log.Fatalf("server not ready: %s", err)
	}
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *IntegrationTestSuite) cleanup() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			fmt.Printf(" --> test suite db close error: %s\n", err)
		}
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
}

func (s *IntegrationTestSuite) post(username, path string, form url.Values) (int, string) {
	req, err := http.NewRequest(http.MethodPost, serverEndpoint+path, strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(userHeader, username)

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *IntegrationTestSuite) get(username, path string) (int, string) {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+path, nil)
	s.Require().NoError(err)
	req.Header.Set(userHeader, username)

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *IntegrationTestSuite) activeSessionRow(username string) (int64, bool) {
	var sessionID int64
	err := s.DB.QueryRow(
		`SELECT session_id FROM ironlog_active_session WHERE username = $1`,
		username,
	).Scan(&sessionID)
	if err == sql.ErrNoRows {
		return 0, false
	}
	s.Require().NoError(err)
	return sessionID, true
}

func (s *IntegrationTestSuite) TestActiveSessionSchema() {
	// creating it again must be a no-op
	_, err := s.DB.Exec(state.CreateActiveSessionTableSQL)
	s.Require().NoError(err)

	var columns []string
	rows, err := s.DB.Query(
		`SELECT column_name FROM information_schema.columns WHERE table_name = 'ironlog_active_session' ORDER BY ordinal_position`,
	)
	s.Require().NoError(err)
	defer rows.Close()
	for rows.Next() {
		var c string
		s.Require().NoError(rows.Scan(&c))
		columns = append(columns, c)
	}
	s.Require().NoError(rows.Err())
	s.Equal([]string{"username", "session_id", "updated_at"}, columns)
}

func (s *IntegrationTestSuite) TestHealth() {
	resp, err := s.httpClient.Get(serverEndpoint + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("test-version-info", resp.Header.Get("X-IronLog-Version"))
}

func (s *IntegrationTestSuite) TestWorkoutIsPersistedPerUser() {
	status, body := s.post("ana", "/session/start", url.Values{"date": {"2024-07-17"}, "notes": {"legs"}})
	s.Require().Equal(http.StatusOK, status)
	s.Contains(body, "Session started!")

	sessionID, ok := s.activeSessionRow("ana")
	s.Require().True(ok)
	s.Contains(body, fmt.Sprintf("Session #%d", sessionID))

	_, ok = s.activeSessionRow("bojan")
	s.False(ok)
	status, body = s.post("bojan", "/sets", url.Values{"exercise_id": {"7"}, "reps": {"5"}})
	s.Equal(http.StatusOK, status)
	s.Contains(body, "Start a session first!")

	status, body = s.post("ana", "/sets", url.Values{"exercise_id": {"7"}, "reps": {"5"}, "weight_kg": {"100"}})
	s.Equal(http.StatusOK, status)
	s.Contains(body, "5 reps @ 100 kg")
	s.Contains(body, "Set logged!")

	// a full page load restores the session from postgres
	status, body = s.get("ana", "/app")
	s.Equal(http.StatusOK, status)
	s.Contains(body, fmt.Sprintf("Session #%d", sessionID))
	s.Contains(body, "Squat")

	status, body = s.post("ana", "/session/end", url.Values{"calories_burned": {"450"}})
	s.Equal(http.StatusOK, status)
	s.Contains(body, "Session ended!")

	_, ok = s.activeSessionRow("ana")
	s.False(ok)
	calories, ended := s.backend.endedSession(sessionID)
	s.Require().True(ended)
	s.Require().NotNil(calories)
	s.Equal(450.0, *calories)
}
