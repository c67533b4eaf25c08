package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
	"github.com/2beens/ironlog/internal/ironlog/state"
	"github.com/2beens/ironlog/internal/ironlog/view"

	log "github.com/sirupsen/logrus"
)

// HandleApp renders the full page. A persisted active session is restored
// as is, without asking the backend whether it still exists.
func (h *Handler) HandleApp(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	page := AppPage{
		Username:   username,
		Panels:     h.inactivePanels(),
		BodyWeight: BodyWeightInputs{Today: h.todayDate()},
	}

	id, active, err := h.sessions.Active(ctx, username)
	if err != nil {
		log.Errorf("restore active session for %s: %s", username, err)
	}

	if active {
		sv, err := h.sessionView(ctx, id)
		if err != nil {
			log.Errorf("load current session %d: %s", id, err)
			page.Toast = &Toast{Kind: ToastError, Message: msgBackendUnavailable}
			sv = view.NewSessionView(nil)
		}
		panels, err := h.activePanels(ctx, username, id, sv)
		if err != nil {
			log.Errorf("load exercises for %s: %s", username, err)
			page.Toast = &Toast{Kind: ToastError, Message: msgBackendUnavailable}
		}
		page.Panels = panels
	}

	h.respond(w, fragment{name: "app", data: page})
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("start session failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	date := strings.TrimSpace(r.Form.Get("date"))
	if date == "" {
		date = h.todayDate()
	}
	newSession := api.NewSession{
		Date:  date,
		Notes: strings.TrimSpace(r.Form.Get("notes")),
	}

	id, err := h.sessions.Start(ctx, username, newSession)
	if err != nil {
		if errors.Is(err, state.ErrSessionNotCreated) {
			log.Warnf("start session for %s: %s", username, err)
			h.respondToast(w, ToastError, msgSessionNotStarted)
			return
		}
		h.backendUnavailable(w, "start session", err)
		return
	}
	h.userCache.InvalidateOverview(username)
	log.Debugf("session %d started by %s", id, username)

	panels, err := h.activePanels(ctx, username, id, view.NewSessionView(nil))
	if err != nil {
		log.Errorf("load exercises for %s: %s", username, err)
		h.respond(w, fragment{name: "session-panels", data: panels}, h.toast(ToastError, msgBackendUnavailable))
		return
	}

	h.respond(w, fragment{name: "session-panels", data: panels}, h.toast(ToastSuccess, msgSessionStarted))
}

func (h *Handler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("end session failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	calories := format.ParseOptionalFloat(r.Form.Get("calories_burned"))
	id, err := h.sessions.End(r.Context(), username, calories)
	if err != nil {
		if errors.Is(err, state.ErrNoActiveSession) {
			h.respond(w, fragment{name: "session-panels", data: h.inactivePanels()}, h.toast(ToastError, msgStartSessionFirst))
			return
		}
		h.backendUnavailable(w, "end session", err)
		return
	}
	h.userCache.InvalidateOverview(username)
	log.Debugf("session %d ended by %s", id, username)

	h.respond(w, fragment{name: "session-panels", data: h.inactivePanels()}, h.toast(ToastSuccess, msgSessionEnded))
}

func (h *Handler) HandleCurrentSession(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	current, err := h.currentSession(r.Context(), username)
	if err != nil {
		h.backendUnavailable(w, "load current session", err)
		return
	}
	h.respond(w, fragment{name: "current-session", data: current})
}

func (h *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("log set failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	sessionID, active, err := h.sessions.Active(ctx, username)
	if err != nil {
		h.backendUnavailable(w, "get active session", err)
		return
	}
	if !active {
		h.respondToast(w, ToastError, msgStartSessionFirst)
		return
	}
	exerciseID, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("exercise_id")), 10, 64)
	if err != nil || exerciseID <= 0 {
		h.respondToast(w, ToastError, msgSelectExercise)
		return
	}

	setNumber := 1
	if n := format.ParseOptionalInt(r.Form.Get("set_number")); n != nil && *n > 0 {
		setNumber = *n
	}
	newSet := api.NewSet{
		SessionID:   sessionID,
		ExerciseID:  exerciseID,
		SetNumber:   setNumber,
		Reps:        format.ParseOptionalInt(r.Form.Get("reps")),
		WeightKg:    format.ParseOptionalFloat(r.Form.Get("weight_kg")),
		RestSeconds: format.ParseOptionalInt(r.Form.Get("rest_seconds")),
		RPE:         format.ParseOptionalFloat(r.Form.Get("rpe")),
		Notes:       strings.TrimSpace(r.Form.Get("notes")),
	}

	if err := h.backend.CreateSet(ctx, newSet); err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "log set", err)
			return
		}
		log.Warnf("log set for session %d rejected: %s", sessionID, err)
	} else {
		h.metricsManager.CounterSetsLogged.Inc()
	}
	h.userCache.InvalidateOverview(username)

	sv, err := h.sessionView(ctx, sessionID)
	if err != nil {
		h.backendUnavailable(w, "load current session", err)
		return
	}

	h.respond(w,
		fragment{name: "current-session", data: SessionGroups{View: sv, Editable: true}},
		fragment{name: "set-inputs", data: SetInputs{SetNumber: setNumber + 1, OOB: true}},
		h.toast(ToastSuccess, msgSetLogged),
	)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	if err := h.backend.DeleteSet(ctx, id); err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "delete set", err)
			return
		}
		log.Warnf("delete set %d rejected: %s", id, err)
	}
	h.userCache.InvalidateOverview(username)

	current, err := h.currentSession(ctx, username)
	if err != nil {
		h.backendUnavailable(w, "load current session", err)
		return
	}
	h.respond(w, fragment{name: "current-session", data: current})
}

func (h *Handler) HandleLogCardio(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("log cardio failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	sessionID, active, err := h.sessions.Active(ctx, username)
	if err != nil {
		h.backendUnavailable(w, "get active session", err)
		return
	}
	if !active {
		h.respondToast(w, ToastError, msgStartSessionFirst)
		return
	}
	activity := api.ActivityType(strings.TrimSpace(r.Form.Get("activity_type")))
	if !activity.IsValid() {
		h.respondToast(w, ToastError, msgSelectActivity)
		return
	}

	newCardio := api.NewCardio{
		SessionID:    sessionID,
		ActivityType: activity,
		DistanceKm:   format.ParseOptionalFloat(r.Form.Get("distance_km")),
		DurationMin:  format.ParseOptionalFloat(r.Form.Get("duration_min")),
		AvgHeartRate: format.ParseOptionalInt(r.Form.Get("avg_heart_rate")),
		ElevationM:   format.ParseOptionalFloat(r.Form.Get("elevation_m")),
		Notes:        strings.TrimSpace(r.Form.Get("notes")),
	}

	if _, err := h.backend.CreateCardio(ctx, newCardio); err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "log cardio", err)
			return
		}
		log.Warnf("log cardio for session %d rejected: %s", sessionID, err)
	} else {
		h.metricsManager.CounterCardioLogged.WithLabelValues(activity.String()).Inc()
	}
	h.userCache.InvalidateOverview(username)

	sv, err := h.sessionView(ctx, sessionID)
	if err != nil {
		h.backendUnavailable(w, "load current session", err)
		return
	}

	h.respond(w,
		fragment{name: "current-session", data: SessionGroups{View: sv, Editable: true}},
		fragment{name: "cardio-inputs", data: CardioInputs{OOB: true}},
		h.toast(ToastSuccess, msgCardioLogged),
	)
}

func (h *Handler) HandleDeleteCardio(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	if err := h.backend.DeleteCardio(ctx, id); err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "delete cardio", err)
			return
		}
		log.Warnf("delete cardio %d rejected: %s", id, err)
	}
	h.userCache.InvalidateOverview(username)

	current, err := h.currentSession(ctx, username)
	if err != nil {
		h.backendUnavailable(w, "load current session", err)
		return
	}
	h.respond(w, fragment{name: "current-session", data: current})
}

// HandlePacePreview renders the live pace for the distance and duration inputs.
func (h *Handler) HandlePacePreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pace := format.Pace(
		format.ParseOptionalFloat(query.Get("distance_km")),
		format.ParseOptionalFloat(query.Get("duration_min")),
	)
	h.respond(w, fragment{name: "pace-preview", data: PacePreview{Label: format.OptionalPaceLabel(pace)}})
}
