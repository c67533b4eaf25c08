package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"

	log "github.com/sirupsen/logrus"
)

func (h *Handler) HandleExerciseOptions(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	exercises, err := h.exercises(r.Context(), username)
	if err != nil {
		h.backendUnavailable(w, "list exercises", err)
		return
	}

	selectedID, _ := strconv.ParseInt(r.URL.Query().Get("exercise_id"), 10, 64)
	h.respond(w, fragment{name: "exercise-options", data: NewExerciseOptions(exercises, selectedID, "")})
}

// HandleCreateExercise answers the exercise modal form. The form itself is
// never swapped, every update goes out of band.
func (h *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("add exercise failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	modal := ExerciseModal{
		Open:      true,
		OOB:       true,
		Name:      strings.TrimSpace(r.Form.Get("name")),
		Muscle:    strings.TrimSpace(r.Form.Get("muscle_group")),
		Equipment: strings.TrimSpace(r.Form.Get("equipment")),
	}
	if modal.Name == "" {
		modal.Error = msgNameRequired
		h.respond(w, fragment{name: "exercise-modal", data: modal})
		return
	}

	created, err := h.backend.CreateExercise(ctx, api.NewExercise{
		Name:        modal.Name,
		MuscleGroup: modal.Muscle,
		Equipment:   modal.Equipment,
	})
	if err != nil {
		var apiErr *api.APIError
		if !errors.As(err, &apiErr) {
			h.backendUnavailable(w, "add exercise", err)
			return
		}
		log.Warnf("add exercise %q for %s rejected: %s", modal.Name, username, err)
		modal.Error = apiErr.Message
		if modal.Error == "" {
			modal.Error = msgFailedToAddExercise
		}
		h.respond(w, fragment{name: "exercise-modal", data: modal})
		return
	}
	if created != nil {
		log.Debugf("exercise %d [%s] added by %s", created.ID, created.Name, username)
	}

	h.userCache.InvalidateExercises(username)
	exercises, err := h.exercises(ctx, username)
	if err != nil {
		h.backendUnavailable(w, "list exercises", err)
		return
	}

	h.respond(w,
		fragment{name: "exercise-select", data: ExerciseSelect{Options: NewExerciseOptions(exercises, 0, modal.Name), OOB: true}},
		fragment{name: "exercise-modal", data: ExerciseModal{OOB: true}},
		h.toast(ToastSuccess, msgExerciseAdded),
	)
}
