package web

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/cache"
	"github.com/2beens/ironlog/internal/ironlog/format"
	"github.com/2beens/ironlog/internal/ironlog/view"
	"github.com/2beens/ironlog/internal/middleware"
	"github.com/2beens/ironlog/internal/telemetry/metrics"
	"github.com/2beens/ironlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=web_test

type ironlogBackend interface {
	ListExercises(ctx context.Context) ([]api.Exercise, error)
	CreateExercise(ctx context.Context, ex api.NewExercise) (*api.Exercise, error)
	ListSessions(ctx context.Context) ([]api.SessionSummary, error)
	GetSession(ctx context.Context, id int64) (*api.SessionDetail, error)
	CreateSet(ctx context.Context, set api.NewSet) error
	DeleteSet(ctx context.Context, id int64) error
	CreateCardio(ctx context.Context, cardio api.NewCardio) (*api.CardioEntry, error)
	DeleteCardio(ctx context.Context, id int64) error
	LogBodyWeight(ctx context.Context, bw api.NewBodyWeight) error
	ListBodyWeight(ctx context.Context) ([]api.BodyWeightEntry, error)
	AnalyticsOverview(ctx context.Context) (*api.AnalyticsOverview, error)
}

type sessionManager interface {
	Active(ctx context.Context, username string) (int64, bool, error)
	Start(ctx context.Context, username string, s api.NewSession) (int64, error)
	End(ctx context.Context, username string, caloriesBurned *float64) (int64, error)
}

type Handler struct {
	backend        ironlogBackend
	sessions       sessionManager
	userCache      *cache.UserCache
	templates      *Templates
	metricsManager *metrics.Manager
	location       *time.Location
	now            func() time.Time
}

func NewHandler(
	backend ironlogBackend,
	sessions sessionManager,
	userCache *cache.UserCache,
	templates *Templates,
	metricsManager *metrics.Manager,
	location *time.Location,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		backend:        backend,
		sessions:       sessions,
		userCache:      userCache,
		templates:      templates,
		metricsManager: metricsManager,
		location:       location,
		now:            time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/app", h.HandleApp).Methods("GET").Name("app")

	r.HandleFunc("/exercises/options", h.HandleExerciseOptions).Methods("GET").Name("exercise-options")
	r.HandleFunc("/exercises", h.HandleCreateExercise).Methods("POST").Name("new-exercise")

	r.HandleFunc("/session/start", h.HandleStartSession).Methods("POST").Name("start-session")
	r.HandleFunc("/session/end", h.HandleEndSession).Methods("POST").Name("end-session")
	r.HandleFunc("/session/current", h.HandleCurrentSession).Methods("GET").Name("current-session")

	r.HandleFunc("/sets", h.HandleLogSet).Methods("POST").Name("new-set")
	r.HandleFunc("/sets/{id}", h.HandleDeleteSet).Methods("DELETE").Name("remove-set")
	r.HandleFunc("/cardio", h.HandleLogCardio).Methods("POST").Name("new-cardio")
	r.HandleFunc("/cardio/pace", h.HandlePacePreview).Methods("GET").Name("cardio-pace")
	r.HandleFunc("/cardio/{id}", h.HandleDeleteCardio).Methods("DELETE").Name("remove-cardio")

	r.HandleFunc("/history", h.HandleHistory).Methods("GET").Name("history")
	r.HandleFunc("/history/{id}", h.HandleSessionDetail).Methods("GET").Name("session-detail")
	r.HandleFunc("/bodyweight", h.HandleBodyWeightList).Methods("GET").Name("list-bodyweight")
	r.HandleFunc("/bodyweight", h.HandleLogBodyWeight).Methods("POST").Name("new-bodyweight")

	r.HandleFunc("/forge", h.HandleForge).Methods("GET").Name("forge")
	r.HandleFunc("/forge/exercise", h.HandleForgeExercise).Methods("GET").Name("forge-exercise")
}

type fragment struct {
	name string
	data any
}

// respond renders the fragments in order into one htmx response.
func (h *Handler) respond(w http.ResponseWriter, fragments ...fragment) {
	var buf bytes.Buffer
	for _, f := range fragments {
		if err := h.templates.Render(&buf, f.name, f.data); err != nil {
			log.Errorf("render fragment %s: %s", f.name, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}
	pkg.WriteHTMLResponseOK(w, buf.Bytes())
}

func (h *Handler) toast(kind ToastKind, message string) fragment {
	h.metricsManager.CounterToasts.WithLabelValues(string(kind)).Inc()
	return fragment{name: "toast", data: Toast{Kind: kind, Message: message}}
}

// respondToast leaves the request target untouched and only shows the toast.
func (h *Handler) respondToast(w http.ResponseWriter, kind ToastKind, message string) {
	w.Header().Set("HX-Reswap", "none")
	h.respond(w, h.toast(kind, message))
}

func (h *Handler) backendUnavailable(w http.ResponseWriter, op string, err error) {
	log.Errorf("%s: %s", op, err)
	h.respondToast(w, ToastError, msgBackendUnavailable)
}

func (h *Handler) username(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return username, ok
}

func (h *Handler) today() time.Time {
	return h.now().In(h.location)
}

func (h *Handler) todayDate() string {
	return format.Today(h.now(), h.location)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// exercises serves the per-user exercise list from cache, falling back to the backend.
func (h *Handler) exercises(ctx context.Context, username string) ([]api.Exercise, error) {
	if exercises, ok := h.userCache.Exercises(username); ok {
		return exercises, nil
	}

	exercises, err := h.backend.ListExercises(ctx)
	if err != nil {
		if api.IsRejected(err) {
			log.Warnf("list exercises for %s rejected: %s", username, err)
			return []api.Exercise{}, nil
		}
		return nil, err
	}
	h.userCache.SetExercises(username, exercises)
	return exercises, nil
}

func (h *Handler) overview(ctx context.Context, username string) (*api.AnalyticsOverview, error) {
	if overview, ok := h.userCache.Overview(username); ok {
		return overview, nil
	}

	overview, err := h.backend.AnalyticsOverview(ctx)
	if err != nil {
		if api.IsRejected(err) {
			log.Warnf("analytics overview for %s rejected: %s", username, err)
			return &api.AnalyticsOverview{}, nil
		}
		return nil, err
	}
	h.userCache.SetOverview(username, overview)
	return overview, nil
}

// sessionView fetches a session for display. A rejected fetch, like the one
// for a stale session id, renders as an empty session.
func (h *Handler) sessionView(ctx context.Context, id int64) (view.SessionView, error) {
	detail, err := h.backend.GetSession(ctx, id)
	if err != nil {
		if api.IsRejected(err) {
			log.Warnf("get session %d rejected: %s", id, err)
			return view.NewSessionView(nil), nil
		}
		return view.SessionView{}, err
	}
	return view.NewSessionView(detail), nil
}

// currentSession renders the active session of the user, or an empty one.
func (h *Handler) currentSession(ctx context.Context, username string) (SessionGroups, error) {
	id, active, err := h.sessions.Active(ctx, username)
	if err != nil {
		return SessionGroups{}, err
	}
	if !active {
		return SessionGroups{View: view.NewSessionView(nil), Editable: true}, nil
	}

	sv, err := h.sessionView(ctx, id)
	if err != nil {
		return SessionGroups{}, err
	}
	return SessionGroups{View: sv, Editable: true}, nil
}

func (h *Handler) inactivePanels() SessionPanels {
	return SessionPanels{Today: h.todayDate()}
}

func (h *Handler) activePanels(ctx context.Context, username string, id int64, sv view.SessionView) (SessionPanels, error) {
	panels := SessionPanels{
		Active:    true,
		ID:        id,
		Today:     h.todayDate(),
		Session:   SessionGroups{View: sv, Editable: true},
		SetInputs: SetInputs{SetNumber: 1},
		Exercise:  ExerciseSelect{Options: []ExerciseOption{}},
	}

	exercises, err := h.exercises(ctx, username)
	if err != nil {
		return panels, err
	}
	panels.Exercise.Options = NewExerciseOptions(exercises, 0, "")
	return panels, nil
}
