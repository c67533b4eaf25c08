package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
	"github.com/2beens/ironlog/internal/ironlog/view"

	log "github.com/sirupsen/logrus"
)

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	sessions, err := h.backend.ListSessions(r.Context())
	if err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "list sessions", err)
			return
		}
		log.Warnf("list sessions for %s rejected: %s", username, err)
	}

	h.respond(w, fragment{name: "history-list", data: view.NewHistoryCards(sessions)})
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.username(w, r); !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	detail, err := h.backend.GetSession(r.Context(), id)
	if err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "get session", err)
			return
		}
		log.Warnf("get session %d rejected: %s", id, err)
		detail = nil
	}

	sv := view.NewSessionView(detail)
	modal := SessionModal{
		Title:  sv.Date,
		Notes:  sv.Notes,
		Groups: SessionGroups{View: sv},
	}
	switch {
	case api.IsNotFound(err):
		// stale id, e.g. a history row of a session deleted elsewhere
		modal.Title = "Session not found"
	case modal.Title == "":
		modal.Title = fmt.Sprintf("Session #%d", id)
	}
	h.respond(w, fragment{name: "session-modal", data: modal})
}

func (h *Handler) HandleBodyWeightList(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}

	rows, err := h.bodyWeightRows(r, username)
	if err != nil {
		h.backendUnavailable(w, "list body weight", err)
		return
	}
	h.respond(w, fragment{name: "bodyweight-list", data: rows})
}

func (h *Handler) HandleLogBodyWeight(w http.ResponseWriter, r *http.Request) {
	username, ok := h.username(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("log body weight failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	weight := format.ParseOptionalFloat(r.Form.Get("weight_kg"))
	if weight == nil || *weight <= 0 {
		h.respondToast(w, ToastError, msgEnterWeight)
		return
	}
	date := strings.TrimSpace(r.Form.Get("date"))
	if date == "" {
		date = h.todayDate()
	}

	entry := api.NewBodyWeight{
		WeightKg: *weight,
		Date:     date,
		Notes:    strings.TrimSpace(r.Form.Get("notes")),
	}
	if err := h.backend.LogBodyWeight(r.Context(), entry); err != nil {
		if !api.IsRejected(err) {
			h.backendUnavailable(w, "log body weight", err)
			return
		}
		log.Warnf("log body weight for %s rejected: %s", username, err)
	}
	h.userCache.InvalidateOverview(username)

	rows, err := h.bodyWeightRows(r, username)
	if err != nil {
		h.backendUnavailable(w, "list body weight", err)
		return
	}

	h.respond(w,
		fragment{name: "bodyweight-list", data: rows},
		fragment{name: "bw-inputs", data: BodyWeightInputs{Today: h.todayDate(), OOB: true}},
		h.toast(ToastSuccess, msgWeightSaved),
	)
}

func (h *Handler) bodyWeightRows(r *http.Request, username string) ([]view.BodyWeightRow, error) {
	entries, err := h.backend.ListBodyWeight(r.Context())
	if err != nil {
		if !api.IsRejected(err) {
			return nil, err
		}
		log.Warnf("list body weight for %s rejected: %s", username, err)
	}
	return view.NewBodyWeightRows(entries), nil
}
