package web

import (
	"net/http"

	"github.com/2beens/ironlog/internal/ironlog/view"
)

func (h *Handler) HandleForge(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	overview, err := h.overview(r.Context(), username)
	if err != nil {
		h.backendUnavailable(w, "analytics overview", err)
		return
	}
	h.respond(w, fragment{name: "forge", data: view.BuildForge(overview, h.today())})
}

// HandleForgeExercise swaps the progression chart when another exercise is picked.
func (h *Handler) HandleForgeExercise(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	overview, err := h.overview(r.Context(), username)
	if err != nil {
		h.backendUnavailable(w, "analytics overview", err)
		return
	}
	chart := view.ExerciseChart(overview.ExerciseProgress, r.URL.Query().Get("name"))
	h.respond(w, fragment{name: "chart", data: chart})
}
