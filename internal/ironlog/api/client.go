package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/ironlog/internal/telemetry/metrics"
	"github.com/2beens/ironlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// APIError is returned for every non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// IsRejected reports whether err is a backend rejection (as opposed to a transport failure).
func IsRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type credentialsKey struct{}

// ContextWithCredentials stores the caller's cookie header, forwarded on every backend call.
func ContextWithCredentials(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, credentialsKey{}, cookie)
}

func credentialsFrom(ctx context.Context) string {
	cookie, _ := ctx.Value(credentialsKey{}).(string)
	return cookie
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

func (c *Client) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises := make([]Exercise, 0)
	if err := c.do(ctx, http.MethodGet, "/api/exercises", "/api/exercises", nil, &exercises); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (c *Client) CreateExercise(ctx context.Context, ex NewExercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/exercises", "/api/exercises", ex, &resp); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	created := &Exercise{
		ID:   resp.ID,
		Name: ex.Name,
	}
	if ex.MuscleGroup != "" {
		created.MuscleGroup = &ex.MuscleGroup
	}
	if ex.Equipment != "" {
		created.Equipment = &ex.Equipment
	}
	return created, nil
}

// CreateSession returns the new session id; zero means the backend did not provide one.
func (c *Client) CreateSession(ctx context.Context, s NewSession) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/sessions", "/api/sessions", s, &resp); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	span.SetAttributes(attribute.Int64("session.id", resp.ID))
	return resp.ID, nil
}

func (c *Client) EndSession(ctx context.Context, id int64, caloriesBurned *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sessions.end")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	path := fmt.Sprintf("/api/sessions/%d/end", id)
	if err := c.do(ctx, http.MethodPost, "/api/sessions/{id}/end", path, EndSession{CaloriesBurned: caloriesBurned}, nil); err != nil {
		return fmt.Errorf("end session %d: %w", id, err)
	}
	return nil
}

func (c *Client) ListSessions(ctx context.Context) (_ []SessionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions := make([]SessionSummary, 0)
	if err := c.do(ctx, http.MethodGet, "/api/sessions", "/api/sessions", nil, &sessions); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) GetSession(ctx context.Context, id int64) (_ *SessionDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	session := &SessionDetail{}
	path := "/api/sessions/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, "/api/sessions/{id}", path, nil, session); err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	if session.ID == 0 {
		session.ID = id
	}
	return session, nil
}

func (c *Client) CreateSet(ctx context.Context, set NewSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sets.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("session.id", set.SessionID),
		attribute.Int64("exercise.id", set.ExerciseID),
	)

	if err := c.do(ctx, http.MethodPost, "/api/sets", "/api/sets", set, nil); err != nil {
		return fmt.Errorf("create set: %w", err)
	}
	return nil
}

func (c *Client) DeleteSet(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path := "/api/sets/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodDelete, "/api/sets/{id}", path, nil, nil); err != nil {
		return fmt.Errorf("delete set %d: %w", id, err)
	}
	return nil
}

// CreateCardio returns the created entry; the backend may fill in avg_pace_min_km.
func (c *Client) CreateCardio(ctx context.Context, cardio NewCardio) (_ *CardioEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.cardio.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cardio.activity", cardio.ActivityType.String()))

	entry := &CardioEntry{}
	if err := c.do(ctx, http.MethodPost, "/api/cardio", "/api/cardio", cardio, entry); err != nil {
		return nil, fmt.Errorf("create cardio: %w", err)
	}
	if entry.SessionID == 0 {
		entry.SessionID = cardio.SessionID
	}
	if entry.ActivityType == "" {
		entry.ActivityType = cardio.ActivityType
	}
	return entry, nil
}

func (c *Client) DeleteCardio(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path := "/api/cardio/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodDelete, "/api/cardio/{id}", path, nil, nil); err != nil {
		return fmt.Errorf("delete cardio %d: %w", id, err)
	}
	return nil
}

func (c *Client) LogBodyWeight(ctx context.Context, bw NewBodyWeight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.bodyweight.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.do(ctx, http.MethodPost, "/api/bodyweight", "/api/bodyweight", bw, nil); err != nil {
		return fmt.Errorf("log body weight: %w", err)
	}
	return nil
}

func (c *Client) ListBodyWeight(ctx context.Context) (_ []BodyWeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries := make([]BodyWeightEntry, 0)
	if err := c.do(ctx, http.MethodGet, "/api/bodyweight", "/api/bodyweight", nil, &entries); err != nil {
		return nil, fmt.Errorf("list body weight: %w", err)
	}
	return entries, nil
}

func (c *Client) AnalyticsOverview(ctx context.Context) (_ *AnalyticsOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "api.analytics.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	overview := &AnalyticsOverview{}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/overview", "/api/analytics/overview", nil, overview); err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}
	return overview, nil
}

// do sends a JSON request; route is the templated path used as a metrics label.
func (c *Client) do(ctx context.Context, method, route, path string, body, out any) (err error) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cookie := credentialsFrom(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	status := "transport_error"
	defer func(begin time.Time) {
		if c.metricsManager != nil {
			c.metricsManager.CounterBackendCalls.WithLabelValues(route, method, status).Inc()
			c.metricsManager.HistBackendCallDuration.WithLabelValues(route, method).Observe(time.Since(begin).Seconds())
		}
	}(time.Now())

	log.Tracef("backend call [%s] %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &errResp) == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}
	return nil
}
